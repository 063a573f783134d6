/*
Package ranger initializes and manages a frontdesk app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].

[*Ranger.Guide] begins a frontdesk app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the web server.

Stop that web server with [*Ranger.Shutdown],
cancel the context passed in with [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a frontdesk app through environment variables
and by passing [RangerOption] to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_DESCRIPTION: a short description of the application
  - APP_TITLE: a short title for the application; default: frontdesk
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [frontdesk.Environment]
  - FORCE_HTTPS: redirect plain HTTP requests to HTTPS; default: false
  - HOST: the host the application is running on; default: localhost
  - LOG_JSON: log as JSON in DEVELOPMENT as well; default: false
  - LOG_LEVEL: the level at which to begin logging; default: INFO
  - MAX_BODY_BYTES: the largest request body read; default: 1048576
  - METRICS_ADDR: the address a separate server exposes /metrics on; default: none
  - PORT: the port the application should listen on; default: :3000
  - RATE_LIMIT: GET and HEAD requests allowed per second per IP address; default: 5
  - RATE_BURST: GET and HEAD requests allowed in a single burst per IP address; default: 20
  - SENTRY_DSN: the DSN errors are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idiling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
