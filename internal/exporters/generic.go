package exporters

import (
	"fmt"
	"io"

	"github.com/mrlokans/rolodex/internal/entities"
)

// Renderer serializes one flat record into a format-specific text
// block. Implementations are pure and must tolerate any combination
// of present and absent fields.
type Renderer interface {
	Render(record FlatRecord) (string, error)
	Format() string
}

// Predicate decides whether a contact is included in an export.
type Predicate func(entities.Contact) bool

// All includes every contact.
func All(entities.Contact) bool { return true }

// HasFurigana selects contacts with a phonetic name. This is the
// predicate of the vCard preset.
func HasFurigana(c entities.Contact) bool { return c.Furigana != "" }

// HasNenga selects contacts flagged for greeting cards. This is the
// predicate of the CSV preset.
func HasNenga(c entities.Contact) bool { return c.Field(entities.FieldNenga) != "" }

type ExportResult struct {
	ContactsProcessed int `json:"contacts_processed"`
	ContactsSkipped   int `json:"contacts_skipped"`
}

// Export runs the pipeline over contacts in store order: filter,
// project, render, append to w. The pass is fail-fast: the first
// render or write error aborts the export with no per-contact
// recovery and no guarantee about partial output.
func Export(contacts []entities.Contact, predicate Predicate, project Projector, renderer Renderer, w io.Writer) (ExportResult, error) {
	result := ExportResult{}
	for _, contact := range contacts {
		if !predicate(contact) {
			result.ContactsSkipped++
			continue
		}
		block, err := renderer.Render(project(contact))
		if err != nil {
			return result, fmt.Errorf("failed to render contact %q %q: %w",
				contact.LastName, contact.FirstName, err)
		}
		if _, err := io.WriteString(w, block); err != nil {
			return result, fmt.Errorf("failed to write export output: %w", err)
		}
		result.ContactsProcessed++
	}
	return result, nil
}

// RendererFor maps a format name to its renderer.
func RendererFor(format string) (Renderer, error) {
	switch format {
	case "vcard21":
		return VCard21Renderer{}, nil
	case "vcard30", "vcard":
		return VCard30Renderer{}, nil
	case "csv":
		return CSVRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}
