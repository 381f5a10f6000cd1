// Package main runs the Ship, Captain, Crew console game.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	scccmd "github.com/louisbranch/shipcaptaincrew/internal/cmd/scc"
	"github.com/louisbranch/shipcaptaincrew/internal/platform/config"
)

func main() {
	cfg, err := scccmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	scccmd.ConfigureLogging(cfg, os.Stderr)

	if err := scccmd.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("ship-captain-crew: %v", err)
	}
}
