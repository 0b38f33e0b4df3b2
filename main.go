package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"chatter/app/config"
	"chatter/app/repositories"
	"chatter/app/routes"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("chatter version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: chatter <command>
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the social-posting API server.

Environment:
  CHATTER_ADDR / PORT            Listen address (default :3000).
  CHATTER_DB                     Badger database path (default data/badger).
  CHATTER_JWT_SECRET             Token signing secret.
  CHATTER_TOKEN_TTL              Token lifetime (default 24h).
`
	fmt.Println(helpText)
}

// serve opens the database and runs the HTTP server until the process exits.
func serve() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()
	log.Println("DB is now connected!")

	router := routes.Setup(db, cfg)

	log.Printf("Server is running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
