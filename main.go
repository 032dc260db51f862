package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/xFahrenheit/mimis-expense-tracker/cmd/categories"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/categorize"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/editcmd"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/importcmd"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/recategorize"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/root"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/rules"
	"github.com/xFahrenheit/mimis-expense-tracker/cmd/statements"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly before any logging happens
	configureLogLevelDirectly()

	// 3. Add all subcommands
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(recategorize.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(editcmd.Cmd)
	root.Cmd.AddCommand(statements.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before any command runs
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
