package middleware

import "net/http"

// LimitBody caps how many bytes of a request body handlers may read.
// Reading past the limit fails with an [*net/http.MaxBytesError].
//
// If limit is not positive, NoopAdapter returns and this middleware does nothing.
func LimitBody(limit int64) Adapter {
	if limit <= 0 {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}

			h.ServeHTTP(w, r)
		})
	}
}
