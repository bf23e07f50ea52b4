// Command conta is the local command-line front end of the fiscal engine.
// It operates directly on the SQLite ledger, without the HTTP server.
package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	Execute()
}
