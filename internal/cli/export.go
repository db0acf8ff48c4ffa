package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/rolodex/internal/config"
	"github.com/mrlokans/rolodex/internal/database"
	"github.com/mrlokans/rolodex/internal/database/contacts"
	"github.com/mrlokans/rolodex/internal/entities"
	"github.com/mrlokans/rolodex/internal/exporters"
)

// ExportCommand renders the contact database into a textual
// contact-exchange format. The generic "export" command exposes every
// knob; the export-vcard and export-csv presets fix the destination,
// predicate and format the way the shortcuts always did.
type ExportCommand struct {
	DatabasePath string
	OutputPath   string
	Format       string
	NameFormat   string
	All          bool
	Verbose      bool

	name      string
	predicate exporters.Predicate
}

// NewExportCommand returns the fully configurable export command.
func NewExportCommand() *ExportCommand {
	cfg := config.NewConfig()
	return &ExportCommand{
		name:       "export",
		OutputPath: cfg.Export.VCardPath,
		Format:     "vcard30",
		NameFormat: string(cfg.Export.NameFormat),
		predicate:  exporters.All,
	}
}

// NewVCardExportCommand returns the vCard shortcut: contacts with a
// phonetic name, rendered to the configured .vcf path.
func NewVCardExportCommand() *ExportCommand {
	cfg := config.NewConfig()
	format := "vcard30"
	if cfg.Export.VCardVersion == "2.1" {
		format = "vcard21"
	}
	return &ExportCommand{
		name:       "export-vcard",
		OutputPath: cfg.Export.VCardPath,
		Format:     format,
		NameFormat: string(cfg.Export.NameFormat),
		predicate:  exporters.HasFurigana,
	}
}

// NewCSVExportCommand returns the greeting-card shortcut: contacts
// with the nenga field set, rendered to the configured .csv path.
func NewCSVExportCommand() *ExportCommand {
	cfg := config.NewConfig()
	return &ExportCommand{
		name:       "export-csv",
		OutputPath: cfg.Export.CSVPath,
		Format:     "csv",
		NameFormat: string(cfg.Export.NameFormat),
		predicate:  exporters.HasNenga,
	}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet(cmd.name, flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the contact database file")
	fs.StringVar(&cmd.OutputPath, "output", cmd.OutputPath, "Output file for the rendered contacts")
	if cmd.name == "export" {
		fs.StringVar(&cmd.Format, "format", cmd.Format, "Export format: vcard21, vcard30 or csv")
	}
	fs.StringVar(&cmd.NameFormat, "name-format", cmd.NameFormat, "Default display-name order: first-last or last-first")
	fs.BoolVar(&cmd.All, "all", false, "Export every contact, ignoring the selection predicate")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s [options]\n\n", os.Args[0], cmd.name)
		fmt.Fprintf(os.Stderr, "Render contacts from the local database into a text format.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Export everyone with a phonetic name as vCard 3.0:\n")
		fmt.Fprintf(os.Stderr, "  %s export-vcard -output ~/contacts.vcf\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Export the greeting-card address list:\n")
		fmt.Fprintf(os.Stderr, "  %s export-csv -output ~/nenga.csv\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := exporters.RendererFor(cmd.Format); err != nil {
		return err
	}

	return nil
}

func (cmd *ExportCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("contact database not found: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := contacts.NewRepository(db.DB)
	all, err := repo.GetAllContacts()
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	renderer, err := exporters.RendererFor(cmd.Format)
	if err != nil {
		return err
	}

	predicate := cmd.predicate
	if cmd.All {
		predicate = exporters.All
	}

	projector := exporters.NewProjector(entities.NameFormat(cmd.NameFormat))

	out, err := os.Create(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	result, err := exporters.Export(all, predicate, projector, renderer, w)
	if err != nil {
		return fmt.Errorf("export aborted: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush export output: %w", err)
	}

	if cmd.Verbose {
		for _, contact := range all {
			if predicate(contact) {
				fmt.Printf("  -> %s\n", contact.DisplayName(entities.NameFormat(cmd.NameFormat)))
			}
		}
	}

	fmt.Printf("Exported %d contacts to %s (%d skipped by predicate)\n",
		result.ContactsProcessed, cmd.OutputPath, result.ContactsSkipped)

	return nil
}
