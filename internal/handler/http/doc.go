// Package http implements the REST transport of the book-share server.
//
// It exposes route wiring, request handlers and middleware. Bearer
// authentication, request tracing, access logging and gzip compression are
// handled here before requests reach the service layer.
package http
