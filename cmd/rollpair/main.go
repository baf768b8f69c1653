package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("rollpair: %v", err)
		os.Exit(1)
	}
}
