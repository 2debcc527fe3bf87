// Package app wires the application together: it builds the playlist client,
// the audio converter, the download service and the HTTP server, and runs
// the server until the process is told to stop.
package app
