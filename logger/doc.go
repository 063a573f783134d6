/*
Package logger provides logging functionality to a frontdesk app by defining the required behavior in [Logger]
and providing an implementation of it with [AppLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
[AppLogger] wraps a [*log/slog.Logger], so the configured [log/slog.Handler]
decides which levels are emitted and how records are formatted.

Log messages may carry a [*LogContext].
The LogContext allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging:
the request being served, the error at hand and any other data.

# Handlers

Package ranger composes handlers from the ReplaceAttr functions found here:
[ColorizeLevel], [DeleteLevelAttr], [DeleteMessageAttr] and [TruncSourceAttr].

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

# SentryLogger

[SentryLogger] forwards errors carried in a [*LogContext] to Sentry.
*/
package logger
