package main

import (
	"os"

	"github.com/avstrong/hotelier/internal/app"
	"github.com/avstrong/hotelier/internal/config"
	"github.com/avstrong/hotelier/internal/logger"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		logger.New(os.Stderr, "").LogErrorf("Failed to load config: %v", err.Error())
		os.Exit(1)
	}

	l := logger.New(os.Stdout, conf.Server.LogLevel)

	var exitCode int

	if err := app.Run(l, conf); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
