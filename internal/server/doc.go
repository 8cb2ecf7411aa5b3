// Package server runs the backend stub's HTTP server until its context is
// done, then shuts it down gracefully.
package server
