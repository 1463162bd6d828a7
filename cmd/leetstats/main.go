package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"leetstats/internal/adapter/console"
	"leetstats/internal/di"
)

const usage = `Usage:
  leetstats             serve the stats widget (and the digest, when configured)
  leetstats <username>  print one user's stats and exit
  leetstats -h          show this help
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run owns the signal context so its cleanup happens before the process exits.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "-help", "--help":
			fmt.Fprint(stdout, usage)
			return 0
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(args) > 0 {
		return lookup(ctx, args[0], stdout, stderr)
	}

	application, err := di.InitializeApp()
	if err != nil {
		log.Printf("failed to initialize application: %v", err)
		return 1
	}

	if err := application.Run(ctx); err != nil {
		log.Printf("application runtime error: %v", err)
		return 1
	}
	return 0
}

func lookup(ctx context.Context, username string, stdout, stderr io.Writer) int {
	search, err := di.InitializeSearch()
	if err != nil {
		log.Printf("failed to initialize search: %v", err)
		return 2
	}

	if err := search.Run(ctx, username, console.NewPresenter(stdout, stderr)); err != nil {
		return 1
	}
	return 0
}
