package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// Loadenv loads a local .env file when present; otherwise the process
// environment is used as-is.
func Loadenv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
