// Package handler adapts HTTP requests to use cases.
//
// Handlers parse and validate their input through the typed Handle pipeline,
// call a service and render the result. They never write error responses
// themselves: errors are returned to Echo and rendered by the global error
// handler.
package handler
