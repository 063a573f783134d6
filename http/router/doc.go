/*
Package router defines how a frontdesk web server routes requests.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [*Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is called when a request matches a Route.
Before a request gets to a handler, though,
the middlewares set with OnEveryRequest and any middlewares added to the Route
are called in the order they appear.

A front controller application registers a single handler with [*Router.CatchAll]
and decides itself where a request goes.
*/
package router
