package modkit

import (
	"net/http"
	std "strings"

	pstr "voicebooking/internal/platform/strings"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	ports  any
}

// WithName sets a module name used in logs and port lookups
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix; "" or "/" mounts at the parent.
// Anything else is normalized to one leading slash and no trailing one
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) {
		if std.Trim(prefix, " /") == "" {
			c.prefix = ""
			return
		}
		c.prefix = pstr.MustPrefix(prefix)
	}
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects ports owned by another module.
// The concrete type is declared by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}
