// Package api handles incoming HTTP requests, request parsing, and response
// formatting for the solve and health endpoints. It acts as an adapter
// between external clients and the internal application services, mapping
// solver errors to stable HTTP status codes and error labels.
package api
