package main

import (
	"context"
	"os"

	"minddock/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional for the client
	_ = godotenv.Load()

	os.Exit(cli.Execute(context.Background()))
}
