package main

import (
	"log"

	"github.com/bmc-toolkit/hwisolation/config"
	"github.com/bmc-toolkit/hwisolation/internal/app"
)

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	runAppFunc(cfg)
}
