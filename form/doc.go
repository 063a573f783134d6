/*
Package form validates the contact form submitted from the index page.

Decode reads the submitted data, which is either a JSON object keyed by field
or the list of name/value pairs jQuery's serializeArray produces.
Validate checks the decoded Payload against each field's rule,
reporting at most one message per failing field.
Neither ever fails: garbage in is a Payload that does not validate.
*/
package form
