package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrlokans/rolodex/internal/config"
	"github.com/mrlokans/rolodex/internal/database"
	"github.com/mrlokans/rolodex/internal/scheduler"
)

// ScheduleCommand runs the cron-driven export scheduler in the
// foreground until interrupted.
type ScheduleCommand struct {
	DatabasePath string
}

func NewScheduleCommand() *ScheduleCommand {
	return &ScheduleCommand{}
}

func (cmd *ScheduleCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the contact database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s schedule [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run periodic exports on the configured cron schedule.\n")
		fmt.Fprintf(os.Stderr, "Enable with SCHEDULED_EXPORT_ENABLED=true; see also\n")
		fmt.Fprintf(os.Stderr, "SCHEDULED_EXPORT_SCHEDULE and SCHEDULED_EXPORT_FORMAT.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ScheduleCommand) Run() error {
	cfg := config.NewConfig()
	cfg.Database.Path = cmd.DatabasePath

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.NewExportScheduler(cfg, db)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	<-ctx.Done()
	sched.Stop()

	return nil
}
