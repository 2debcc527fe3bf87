// Package http provides HTTP round-trippers shared by outgoing clients:
// debug-level request/response logging and User-Agent injection.
package http
