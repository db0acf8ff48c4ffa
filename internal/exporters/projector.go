package exporters

import "github.com/mrlokans/rolodex/internal/entities"

// Projector turns one contact into its flat export record. Projection
// is total: it never fails, and the result always carries the full
// FieldKeys set with "" for anything the contact does not populate.
type Projector func(entities.Contact) FlatRecord

// NewProjector returns a Projector that falls back to
// defaultNameFormat for contacts without their own name-format field.
func NewProjector(defaultNameFormat entities.NameFormat) Projector {
	return func(contact entities.Contact) FlatRecord {
		furiganaLast, furiganaFirst := SplitFurigana(contact.Furigana)
		buckets := ClassifyEmails(contact.EmailAddresses())

		nameFormat := contact.Field(entities.FieldNameFormat)
		if nameFormat == "" {
			nameFormat = string(defaultNameFormat)
		}

		return FlatRecord{
			KeyLastName:      contact.LastName,
			KeyFirstName:     contact.FirstName,
			KeyNameFormat:    nameFormat,
			KeyOrganization:  contact.Organization,
			KeyFurigana:      contact.Furigana,
			KeyFuriganaLast:  furiganaLast,
			KeyFuriganaFirst: furiganaFirst,
			KeyPhoneWork:     PhoneByLabel(contact, entities.LabelWork),
			KeyPhoneWork2:    PhoneByLabel(contact, entities.LabelWork2),
			KeyPhoneHome:     PhoneByLabel(contact, entities.LabelHome),
			KeyPhoneCell:     PhoneByLabel(contact, entities.LabelCell),
			KeyEmailHome:     buckets.Home,
			KeyEmailWork:     buckets.Work,
			KeyEmailCell:     buckets.Cell,
			KeyAddressHome:   AddressByLabel(contact, entities.LabelHome),
			KeyAddressWork:   AddressByLabel(contact, entities.LabelWork),
			KeyAddressJikka:  AddressByLabel(contact, entities.LabelJikka),
			KeyNotes:         contact.Field(entities.FieldNotes),
			KeyBirthday:      contact.Field(entities.FieldBirthday),
			KeyNenga:         contact.Field(entities.FieldNenga),
			KeyWWW:           contact.Field(entities.FieldWWW),
		}
	}
}
