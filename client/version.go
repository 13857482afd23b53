package client

import "fmt"

const libraryName = "x0go"

// Version of the library, reported to the server in the User-Agent header.
// Release builds override it with -ldflags "-X github.com/Payback159/x0go/client.Version=...".
var Version = "0.3.0"

// UserAgent returns the User-Agent value attached to every request.
func UserAgent() string {
	return fmt.Sprintf("%s / %s", libraryName, Version)
}
