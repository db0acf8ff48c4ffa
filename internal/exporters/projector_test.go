package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/rolodex/internal/entities"
)

func TestProjectorTotality(t *testing.T) {
	project := NewProjector(entities.NameFormatLastFirst)

	t.Run("empty contact still yields the full key set", func(t *testing.T) {
		record := project(entities.Contact{})

		assert.Len(t, record, len(FieldKeys))
		for _, key := range FieldKeys {
			_, ok := record[key]
			assert.True(t, ok, "missing key %q", key)
		}
	})

	t.Run("key set is fixed regardless of populated fields", func(t *testing.T) {
		record := project(entities.Contact{
			LastName:  "Kawabata",
			FirstName: "Taichi",
			Furigana:  "カワバタ タイチ",
			Phones:    []entities.Phone{{Label: "work", Number: "03-1234-5678"}},
		})

		assert.Len(t, record, len(FieldKeys))
	})

	t.Run("the key enumeration has 21 entries", func(t *testing.T) {
		assert.Len(t, FieldKeys, 21)
	})
}

func TestProjectorFields(t *testing.T) {
	project := NewProjector(entities.NameFormatLastFirst)

	contact := entities.Contact{
		LastName:     "Kawabata",
		FirstName:    "Taichi",
		Organization: "Example Research Institute",
		Furigana:     "カワバタ タイチ",
		Emails: []entities.Email{
			{Address: "a@x.co.jp", Position: 0},
			{Address: "b@docomo.ne.jp", Position: 1},
			{Address: "c@gmail.com", Position: 2},
		},
		Phones: []entities.Phone{
			{Label: "work", Number: "03-1234-5678"},
			{Label: "home", Number: "03-0000-1111"},
		},
		Addresses: []entities.Address{
			{Label: "home", PostalCode: "〒100-0001", Block: "東京都千代田区1-1"},
			{Label: "実家", PostalCode: "〒600-8001", Block: "京都府京都市下京区1-2"},
		},
		CustomFields: []entities.CustomField{
			{Name: "notes", Value: "college friend"},
			{Name: "birthday", Value: "1972-04-01"},
			{Name: "nenga", Value: "1"},
			{Name: "www", Value: "https://example.org/~taichi"},
		},
	}

	record := project(contact)

	t.Run("direct field reads", func(t *testing.T) {
		assert.Equal(t, "Kawabata", record[KeyLastName])
		assert.Equal(t, "Taichi", record[KeyFirstName])
		assert.Equal(t, "Example Research Institute", record[KeyOrganization])
		assert.Equal(t, "カワバタ タイチ", record[KeyFurigana])
		assert.Equal(t, "college friend", record[KeyNotes])
		assert.Equal(t, "1972-04-01", record[KeyBirthday])
		assert.Equal(t, "1", record[KeyNenga])
		assert.Equal(t, "https://example.org/~taichi", record[KeyWWW])
	})

	t.Run("phonetic split", func(t *testing.T) {
		assert.Equal(t, "カワバタ", record[KeyFuriganaLast])
		assert.Equal(t, "タイチ", record[KeyFuriganaFirst])
	})

	t.Run("phone lookups by label", func(t *testing.T) {
		assert.Equal(t, "03-1234-5678", record[KeyPhoneWork])
		assert.Equal(t, "03-0000-1111", record[KeyPhoneHome])
		assert.Equal(t, "", record[KeyPhoneWork2])
		assert.Equal(t, "", record[KeyPhoneCell])
	})

	t.Run("email classification", func(t *testing.T) {
		assert.Equal(t, "a@x.co.jp", record[KeyEmailWork])
		assert.Equal(t, "b@docomo.ne.jp", record[KeyEmailCell])
		assert.Equal(t, "c@gmail.com", record[KeyEmailHome])
	})

	t.Run("address lookups including the parents'-home class", func(t *testing.T) {
		assert.Equal(t, "〒100-0001\n東京都千代田区1-1", record[KeyAddressHome])
		assert.Equal(t, "〒600-8001\n京都府京都市下京区1-2", record[KeyAddressJikka])
		assert.Equal(t, "", record[KeyAddressWork])
	})
}

func TestProjectorNameFormat(t *testing.T) {
	t.Run("uses the caller's default when the contact has no hint", func(t *testing.T) {
		project := NewProjector(entities.NameFormatLastFirst)
		record := project(entities.Contact{LastName: "Yamada"})
		assert.Equal(t, "last-first", record[KeyNameFormat])
	})

	t.Run("the contact's own name-format field wins", func(t *testing.T) {
		project := NewProjector(entities.NameFormatLastFirst)
		record := project(entities.Contact{
			LastName: "Yamada",
			CustomFields: []entities.CustomField{
				{Name: "name-format", Value: "first-last"},
			},
		})
		assert.Equal(t, "first-last", record[KeyNameFormat])
	})

	t.Run("projection is deterministic", func(t *testing.T) {
		project := NewProjector(entities.NameFormatFirstLast)
		contact := entities.Contact{LastName: "Yamada", FirstName: "Hanako"}
		assert.Equal(t, project(contact), project(contact))
	})
}
