package main

import (
	"github.com/lexigraph/backend/internal/server"
	"github.com/lexigraph/backend/internal/util"
	"github.com/lexigraph/backend/pkg/logger"
	"github.com/lexigraph/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
