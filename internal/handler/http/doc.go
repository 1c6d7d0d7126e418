// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the auth
// API. Cross-cutting concerns such as session cookies, request tracing,
// access logging, and payload validation are handled in this package before
// requests are delegated to the service layer.
package http
