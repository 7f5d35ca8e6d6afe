package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/logger"
)

func usage() {
	fmt.Println("Usage: ingester <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  pdf    - chunk, embed and index a PDF")
	fmt.Println("  stats  - print how many entries the index holds")
	fmt.Println("\nOptions (pdf):")
	fmt.Println("  --path <path>             - PDF to ingest (default ./data/mahabharata.pdf)")
	fmt.Println("  --title <title>           - document title stored with every chunk")
	fmt.Println("  --clear                   - clear existing entries before ingesting")
	fmt.Println("  --chunk-size <n>          - maximum chunk size in characters (default 1000)")
	fmt.Println("  --chunk-overlap <n>       - characters shared by adjacent chunks (default 100)")
	fmt.Println("  --batch-size <n>          - vectors per upsert (default 100)")
	fmt.Println("  --page-resolution <mode>  - offset or search (default offset)")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// route to appropriate command
	switch command {
	case "pdf":
		flags := config.ParseIngestFlags(os.Args[2:])
		if err := IngestPDF(ctx, cfg, flags); err != nil {
			logger.Fatal("failed to ingest pdf", "error", err)
		}

	case "stats":
		if err := PrintStats(ctx, cfg); err != nil {
			logger.Fatal("failed to read index stats", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		usage()
		os.Exit(1)
	}
}
