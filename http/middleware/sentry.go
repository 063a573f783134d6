package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/frontdesk"
)

// ReportPanic encloses the env and returns an Adapter that,
// wraps the handler in sentryhttp.Handle
// in order to recover and report panics.
//
// In development, panics are not recovered.
func ReportPanic(env frontdesk.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(handler http.Handler) http.Handler {
		return sh.Handle(handler)
	}
}
