// Package server exposes the HTTP surface of the application:
// the playlist download endpoint and a health probe.
package server
