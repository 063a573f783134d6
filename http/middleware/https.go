package middleware

import (
	"net/http"
	"net/url"
	"slices"
)

// ForceHTTPS redirects HTTP requests to HTTPS when enabled.
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to a frontdesk application
// running behind a proxy.
//
// Requests using one of the exempt methods are passed through unredirected.
//
// If enabled is false, NoopAdapter returns and this middleware does nothing.
func ForceHTTPS(enabled bool, exempt ...string) Adapter {
	if !enabled {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil || slices.Contains(exempt, r.Method) {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
