package main

import (
	"errors"
	"io/fs"
	"log"

	dotenv "github.com/joho/godotenv"

	"github.com/luki/enviromon/cmd"
)

func main() {
	// A .env file is optional; only a malformed one is fatal.
	if err := dotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
