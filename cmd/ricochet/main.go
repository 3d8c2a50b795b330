// Command ricochet converts, draws, solves and validates Ricochet
// Robots problems.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
