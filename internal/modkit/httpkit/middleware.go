package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"voicebooking/internal/platform/metrics"
	"voicebooking/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration    // access log warn threshold, 0 means 500ms
	Timeout     time.Duration    // request deadline, 0 means 30s
	Metrics     *metrics.Metrics // nil skips the latency middleware
}

// CommonStack is the middleware every API route gets, outermost first
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.SlowRequest <= 0 {
		o.SlowRequest = 500 * time.Millisecond
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	if o.Metrics != nil {
		stack = append([]func(http.Handler) http.Handler{metrics.Middleware(o.Metrics)}, stack...)
	}
	return stack
}
