// Package server runs the HTTP transport of the book-share server and stops
// it gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
