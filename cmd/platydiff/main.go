// Command platydiff prints a token-level, side-aware visual diff of two
// text files to stdout.
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalln(err)
	}
}
