package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rmoralesj29-maker/Green-Blue-Team/pkg/auth"
)

func main() {
	// Load .env from project root
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <keyName>")
		os.Exit(1)
	}

	if os.Getenv("API_MASTER_SECRET") == "" {
		fmt.Println("Error: API_MASTER_SECRET not found in environment")
		os.Exit(1)
	}

	name := os.Args[1]
	apiKey := auth.GenerateHMACKey(name)
	fmt.Printf("Generated Key for %s:\n%s\n", name, apiKey)
}
