package main

import (
	"os"

	"github.com/comite-bacias/presenca/internal/cli"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/env"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	if err := cli.NewRootCommand(&cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
