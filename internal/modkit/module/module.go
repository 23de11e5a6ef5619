// Package module defines the minimal contract for a modkit module
package module

import phttp "voicebooking/internal/platform/net/http"

// Module is what the API composes. It lives apart from modkit so a module
// package can export its own ports type without import cycles
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
