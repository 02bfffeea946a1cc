package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/country-mirror/pkg/app"
	"github.com/chainsafe/country-mirror/pkg/app/api"
	"github.com/chainsafe/country-mirror/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional, env and .env are always read)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "countries api: %v\n", err)
		os.Exit(1)
	}
}
