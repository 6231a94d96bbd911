package middleware

import "net/http"

// Chain composes middleware into one. The first argument is the outermost
// layer, so
//
//	Chain(Recovery(errs), RequestID(), Logging(logger))(handler)
//
// runs Recovery first on the way in and last on the way out.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}
