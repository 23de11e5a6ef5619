package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-module middlewares.
// An empty prefix groups the routes on r itself
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	with := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" || prefix == "/" {
		r.Group(with)
		return
	}
	r.Route(prefix, with)
}

// MountAPI mounts every API module under /api with the shared stack
//
//	httpkit.MountAPI(r, httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  booking.MountRoutes(api)
//	})
func MountAPI(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api", mw, mount)
}
