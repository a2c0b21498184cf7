// Package main provides the activ CLI: evaluate activation functions over JSON batches.
package main

import (
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("activ: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
