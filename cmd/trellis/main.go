package main

import (
	"fmt"
	"os"

	"github.com/trellis-ui/trellis/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "warn", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
