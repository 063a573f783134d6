package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/xy-planning-network/frontdesk"
	"golang.org/x/time/rate"
)

const visitorTTL = 60 * time.Minute

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst int
	limit rate.Limit
	swept time.Time
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors whose newly seen visitors are limited
// to limit requests every second with bursts of up to burst.
func NewVisitors(limit float64, burst int) *Visitors {
	return &Visitors{
		burst: burst,
		limit: rate.Limit(limit),
		swept: time.Now().UTC(),
		val:   make(map[string]Visitor),
	}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len reports how many visitors are tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()

	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
// cleanup sweeps at most once every minute.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()

	if time.Since(vs.swept) < time.Minute {
		return
	}

	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}

	vs.swept = time.Now().UTC()
}

// RateLimit encloses the Visitors map and serves the http.Handler
// for requests whose address has not exceeded its limit.
// Requests over the limit receive a 429.
//
// Only requests with one of the given methods are limited;
// when no methods are given, every request is.
//
// The address is read from [frontdesk.IpAddrKey], so InjectIPAddress must run first;
// otherwise the request headers are parsed with GetIPAddress.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors, methods ...string) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	limited := make(map[string]bool, len(methods))
	for _, m := range methods {
		limited[m] = true
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(limited) > 0 && !limited[r.Method] {
				h.ServeHTTP(w, r)
				return
			}

			ip, ok := r.Context().Value(frontdesk.IpAddrKey).(string)
			if !ok {
				ip = GetIPAddress(r.Header)
			}

			if !visitors.Fetch(ip).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
