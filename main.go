package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/rolodex/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, "rolodex %s (%s)\n\n", Version, Commit)
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  export        Export contacts with explicit format/output/predicate flags\n")
	fmt.Fprintf(os.Stderr, "  export-vcard  Export contacts with a phonetic name as vCard\n")
	fmt.Fprintf(os.Stderr, "  export-csv    Export the greeting-card address list as CSV\n")
	fmt.Fprintf(os.Stderr, "  schedule      Run periodic exports on a cron schedule\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	type runnable interface {
		ParseFlags(args []string) error
		Run() error
	}

	var cmd runnable
	switch command {
	case "export":
		cmd = cli.NewExportCommand()
	case "export-vcard":
		cmd = cli.NewVCardExportCommand()
	case "export-csv":
		cmd = cli.NewCSVExportCommand()
	case "schedule":
		cmd = cli.NewScheduleCommand()
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		usage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
