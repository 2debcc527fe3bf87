// Albumgrab is an HTTP service that downloads a playlist's items
// and converts them to MP3 files in a local output directory.
package main

import "github.com/okhotnikov/albumgrab/cmd"

// main is the entry point of the application.
// It calls the Execute function from the cmd package, which starts the server.
func main() {
	cmd.Execute()
}
