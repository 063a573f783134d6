/*
Package req provides ergonomics for handling an HTTP request.

There are two ways to get data out of a request.
ParseQueryParams decodes query params into a pointer to a struct,
matching keys with "schema" struct tags and then checking the result against "validate" struct tags.
ParseAjax flattens a form, multipart or JSON body into its top-level keys and values,
leaving interpretation of those values to the caller.

Validate is also exposed on its own so that packages can check structs built from other sources.
NewParser accepts a Rule for each custom "validate" tag those structs use.

Errors arising from any of these are translated to frontdesk sentinel errors
in order to provide a consistent interface for issues that arise across encoding types.
*/
package req
