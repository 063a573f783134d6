/*
Package app is the front controller.

Every request enters through an *Application.
A POST, whatever its path, is an AJAX call: its body names a Method and carries data for it,
and the Dispatcher answers with a JSON envelope.
Any other request is routed by its path to an Action in the RoutingTable,
the first path segment naming the controller and the remainder naming the action.
*/
package app
