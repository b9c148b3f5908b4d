package main

import (
	"github.com/joho/godotenv"

	"edbridge/cmd/edbridge-cli/cmd"
)

func main() {
	// Pick up EDITOR from a project .env if one exists.
	_ = godotenv.Load()

	cmd.Execute()
}
