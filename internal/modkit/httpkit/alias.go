// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "voicebooking/internal/platform/net/http"
	"voicebooking/internal/platform/net/http/bind"
)

type (
	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(body any) Response { return phttp.OK(body) }

// Created returns a 201 response
func Created(body any) Response { return phttp.Created(body) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response whose status derives from err
func Error(err error) Response { return phttp.Error(err) }

// JSON binds and validates a body of T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// JSONLoose is JSON that tolerates unknown fields, for clients that send extra keys
func JSONLoose[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn, bind.JSONOptions{AllowUnknown: true})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}
