package main

import (
	"github.com/joho/godotenv"
	"github.com/masmgr/autochangelog/cmd"
)

func main() {
	// Credentials may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	cmd.Run()
}
