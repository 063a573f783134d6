/*
The middleware package defines what a middleware is in frontdesk and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- LimitBody
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Package ranger assembles them into the stack applied to every request:

	vs := middleware.NewVisitors(limit, burst)
	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(httpLogger),
		middleware.RateLimit(vs, http.MethodGet, http.MethodHead),
		middleware.CORS(origin),
		middleware.LimitBody(maxBytes),
	}
*/
package middleware
