// Package main is the entry point for the threept shooting contest
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xtding233/threept/internal/config"
	"github.com/xtding233/threept/internal/console"
	"github.com/xtding233/threept/internal/contest"
)

// version is set during build using ldflags
var (
	version = "dev"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configFlag := flag.String("config", "", "Path to threept.yaml (default: $THREEPT_CONFIG or ./threept.yaml)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("threept version %s\n", version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	if cfg.Source != "" {
		logger.Printf("[CONFIG] loaded %s", cfg.Source)
	}
	logger.Printf("[CONFIG] version=%s log_output=%s debug=%v", version, cfg.LogOutput, cfg.LogDebug)
	if cfg.Notes != "" {
		logger.Printf("[CONFIG] notes: %s", cfg.Notes)
	}

	// one random source for the whole process
	rng := contest.DefaultRNG()

	session := console.NewSession(os.Stdin, os.Stdout, rng, logger)
	session.Debug = cfg.LogDebug
	if err := session.Run(); err != nil {
		logger.Printf("[SESSION] aborted: %v", err)
		closer.Close()
		log.Fatalf("Session failed: %v", err)
	}
}
