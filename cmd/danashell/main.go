// Command danashell runs the offline app-shell gateway: an upstream-facing
// caching layer plus the client state and push notification services.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
