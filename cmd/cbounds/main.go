// Command cbounds computes signs of integer variables of Go functions, reports
// certain bounds violations and renders control flow graphs.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
