package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/autokit/cmd/notify"
	"fjacquet/autokit/cmd/organize"
	"fjacquet/autokit/cmd/root"
	"fjacquet/autokit/cmd/scrape"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// 3. Now that logging is configured, initialize the root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(organize.Cmd)
	root.Cmd.AddCommand(scrape.Cmd)
	root.Cmd.AddCommand(notify.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	// Try to find .env file in current directory
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	// Load .env file silently without logging
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances from the LOG_LEVEL environment variable
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
