// Package http holds the router seam, the server and JSON response helpers.
// Success bodies are written as returned by handlers; errors become pnet.Failure
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/logger"
	pnet "voicebooking/internal/platform/net"
)

// JSON writes v as application/json with status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("encoding response body")
	}
}

// RespondError maps err to a failure body and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Fail(err, pnet.RequestID(r.Context()))
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	JSON(w, status, body)
}

// Response is the value returned by return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(body any) Response { return Response{Status: stdhttp.StatusOK, Body: body} }

// Created returns a 201 response
func Created(body any) Response { return Response{Status: stdhttp.StatusCreated, Body: body} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response whose status derives from err
func Error(err error) Response { return Response{Body: err} }

// NotFound is the JSON fallback for unmatched routes
func NotFound(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	JSON(w, stdhttp.StatusNotFound, pnet.Failure{Error: "Route not found", Code: perr.ErrorCodeNotFound})
}

// MethodNotAllowed is the JSON fallback for a known path with the wrong method
func MethodNotAllowed(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	JSON(w, stdhttp.StatusMethodNotAllowed, pnet.Failure{Error: "Method not allowed", Code: perr.ErrorCodeInvalidArgument})
}
