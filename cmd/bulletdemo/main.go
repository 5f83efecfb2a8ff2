// Command bulletdemo shows a bulleted list in an SDL window, or prints a
// terminal preview with --preview.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
