/*
Package template parses html/template files out of one or more fs.FS.

Filesystems are searched in order, so an application can override a default, embedded view
by placing a file at the same path in an earlier filesystem.
Helpers like Env, Nonce, RootUrl and TitleCase return a name and function
ready for passing to (*Parser).AddFn.
*/
package template
