/*
Package resp provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides four ways of responding to an HTTP request:
  - rendering HTML templates with Html
  - encoding JSON data with Json
  - writing a plain text body with Text
  - failing with Err when nothing else can be written

Each accepts Fn options setting the status code, data and templates for that one response.
*/
package resp
