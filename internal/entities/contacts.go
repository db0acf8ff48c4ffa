package entities

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// NameFormat controls the display order of a contact's formatted name.
// It affects rendering only, never how names are stored.
type NameFormat string

const (
	NameFormatFirstLast NameFormat = "first-last"
	NameFormatLastFirst NameFormat = "last-first"
)

// Labels distinguishing same-kind sub-fields. Lookup is by exact
// string equality; an unmatched label is simply never exported.
const (
	LabelWork  = "work"
	LabelWork2 = "work2"
	LabelHome  = "home"
	LabelCell  = "cell"
	// LabelJikka is the parents'-home address class.
	LabelJikka = "実家"
)

// Custom field names recognized by the export pipeline.
const (
	FieldNotes      = "notes"
	FieldBirthday   = "birthday"
	FieldNenga      = "nenga"
	FieldWWW        = "www"
	FieldNameFormat = "name-format"
)

type Contact struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"index;size:256" json:"first_name"`
	LastName     string `gorm:"index;size:256" json:"last_name"`
	Organization string `gorm:"size:512" json:"organization,omitempty"`

	// Furigana is the phonetic reading of the full name, whitespace
	// separated with the last name first.
	Furigana string `gorm:"size:512" json:"furigana,omitempty"`

	Emails       []Email       `gorm:"foreignKey:ContactID" json:"emails,omitempty"`
	Phones       []Phone       `gorm:"foreignKey:ContactID" json:"phones,omitempty"`
	Addresses    []Address     `gorm:"foreignKey:ContactID" json:"addresses,omitempty"`
	CustomFields []CustomField `gorm:"foreignKey:ContactID" json:"custom_fields,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Email is one entry in a contact's ordered email list. Position
// preserves the store's ordering, which the export classification
// heuristics depend on.
type Email struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContactID uint   `gorm:"index" json:"contact_id"`
	Address   string `gorm:"size:320" json:"address"`
	Position  int    `gorm:"index" json:"position"`
}

// Phone is a labeled phone entry. Number holds the display string when
// the entry was stored as plain text; otherwise the structured
// descriptor parts are set and Display derives the canonical string.
type Phone struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContactID uint   `gorm:"index" json:"contact_id"`
	Label     string `gorm:"index;size:50" json:"label"`
	Number    string `gorm:"size:50" json:"number,omitempty"`

	AreaCode   int `json:"area_code,omitempty"`
	Prefix     int `json:"prefix,omitempty"`
	LineNumber int `json:"line_number,omitempty"`
	Extension  int `json:"extension,omitempty"`
}

// Display returns the canonical display string for the phone entry.
// This is the store's own stringification rule for structured
// descriptors.
func (p Phone) Display() string {
	if p.Number != "" {
		return p.Number
	}
	if p.AreaCode == 0 && p.Prefix == 0 && p.LineNumber == 0 {
		return ""
	}
	s := fmt.Sprintf("%02d-%04d-%04d", p.AreaCode, p.Prefix, p.LineNumber)
	if p.Extension != 0 {
		s += fmt.Sprintf(" x%d", p.Extension)
	}
	return s
}

// Address is a labeled postal address: a postal code plus a multi-line
// address block.
type Address struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContactID uint   `gorm:"index" json:"contact_id"`
	Label     string `gorm:"index;size:50" json:"label"`
	// PostalCode is stored in display form, typically with the
	// leading 〒 mark (e.g. "〒100-0001").
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Block      string `gorm:"type:text" json:"block,omitempty"`
}

// Display returns the address as one multi-line block with the postal
// code, when present, as the first line.
func (a Address) Display() string {
	if a.PostalCode == "" {
		return a.Block
	}
	if a.Block == "" {
		return a.PostalCode
	}
	return a.PostalCode + "\n" + a.Block
}

// CustomField is an arbitrary named value attached to a contact
// (notes, birthday, nenga flag, website, name-format hint).
type CustomField struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContactID uint   `gorm:"index" json:"contact_id"`
	Name      string `gorm:"index;size:100" json:"name"`
	Value     string `gorm:"type:text" json:"value"`
}

// Field returns the named custom field's value, or "" when unset.
func (c Contact) Field(name string) string {
	for _, f := range c.CustomFields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// EmailAddresses returns the contact's email addresses in stored order.
func (c Contact) EmailAddresses() []string {
	addresses := make([]string, 0, len(c.Emails))
	for _, e := range c.Emails {
		addresses = append(addresses, e.Address)
	}
	return addresses
}

// DisplayName returns the contact's name in the given format.
func (c Contact) DisplayName(format NameFormat) string {
	if format == NameFormatLastFirst {
		return strings.TrimSpace(c.LastName + " " + c.FirstName)
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (Contact) TableName() string {
	return "contacts"
}

func (Email) TableName() string {
	return "emails"
}

func (Phone) TableName() string {
	return "phones"
}

func (Address) TableName() string {
	return "addresses"
}

func (CustomField) TableName() string {
	return "custom_fields"
}
