package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/i474232898/composite-nowcast/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, cli.ErrIncomplete) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.ExitSuccess)
}
