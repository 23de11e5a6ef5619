package httpkit

import (
	"net/http"

	phttp "voicebooking/internal/platform/net/http"
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON mounts a JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// PostLoose mounts a JSON handler under POST that ignores unknown fields
func PostLoose[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONLoose(h))
}

// Param returns the named path parameter, e.g. "bookingId" for "/booking/{bookingId}"
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }
