package main

import (
	"os"

	"github.com/soundprediction/triplo/cmd/triplo"
)

func main() {
	if err := triplo.Execute(); err != nil {
		os.Exit(1)
	}
}
