// Package main is a small command line tool for querying a frame graph config file.
package main

import (
	"os"

	"go.viam.com/tf/logging"
)

func main() {
	logger := logging.NewLogger("tf")
	if err := newApp(os.Stdout, logger).Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
