package scheduler

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/rolodex/internal/config"
	"github.com/mrlokans/rolodex/internal/database"
	"github.com/mrlokans/rolodex/internal/database/contacts"
	"github.com/mrlokans/rolodex/internal/exporters"
)

// ExportScheduler runs periodic exports of the contact database to the
// configured output path.
type ExportScheduler struct {
	cfg *config.Config
	db  *database.Database

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewExportScheduler creates a new scheduler instance.
func NewExportScheduler(cfg *config.Config, db *database.Database) *ExportScheduler {
	return &ExportScheduler{
		cfg:  cfg,
		db:   db,
		cron: cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if scheduled export is enabled.
func (s *ExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.ScheduledExport.Enabled {
		log.Printf("Export scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.ScheduledExport.Schedule, func() {
		if err := s.runExport(); err != nil {
			log.Printf("Export scheduler: run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Export scheduler: started with schedule '%s' (format %s)",
		s.cfg.ScheduledExport.Schedule, s.cfg.ScheduledExport.Format)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running export.
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Export scheduler: stopped")
}

// runExport performs one export pass with the preset matching the
// configured format: furigana-selected vCards or the nenga CSV list.
func (s *ExportScheduler) runExport() error {
	renderer, err := exporters.RendererFor(s.cfg.ScheduledExport.Format)
	if err != nil {
		return err
	}

	predicate := exporters.Predicate(exporters.HasFurigana)
	outputPath := s.cfg.Export.VCardPath
	if renderer.Format() == "csv" {
		predicate = exporters.HasNenga
		outputPath = s.cfg.Export.CSVPath
	}

	repo := contacts.NewRepository(s.db.DB)
	all, err := repo.GetAllContacts()
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	projector := exporters.NewProjector(s.cfg.Export.NameFormat)
	result, err := exporters.Export(all, predicate, projector, renderer, w)
	if err != nil {
		return fmt.Errorf("export aborted: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush export output: %w", err)
	}

	log.Printf("Export scheduler: wrote %d contacts to %s (%d skipped)",
		result.ContactsProcessed, outputPath, result.ContactsSkipped)

	return nil
}
