package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneDisplay(t *testing.T) {
	t.Run("plain number wins over structured parts", func(t *testing.T) {
		phone := Phone{Number: "03-1234-5678", AreaCode: 6}
		assert.Equal(t, "03-1234-5678", phone.Display())
	})

	t.Run("structured descriptor formats with zero-padded area code", func(t *testing.T) {
		phone := Phone{AreaCode: 3, Prefix: 1234, LineNumber: 5678}
		assert.Equal(t, "03-1234-5678", phone.Display())
	})

	t.Run("extension appends when set", func(t *testing.T) {
		phone := Phone{AreaCode: 3, Prefix: 1234, LineNumber: 5678, Extension: 21}
		assert.Equal(t, "03-1234-5678 x21", phone.Display())
	})

	t.Run("empty entry displays as empty", func(t *testing.T) {
		assert.Equal(t, "", Phone{}.Display())
	})
}

func TestAddressDisplay(t *testing.T) {
	t.Run("postal code becomes the first line", func(t *testing.T) {
		address := Address{PostalCode: "〒100-0001", Block: "東京都千代田区1-1"}
		assert.Equal(t, "〒100-0001\n東京都千代田区1-1", address.Display())
	})

	t.Run("missing postal code leaves the block alone", func(t *testing.T) {
		address := Address{Block: "東京都千代田区1-1"}
		assert.Equal(t, "東京都千代田区1-1", address.Display())
	})

	t.Run("postal code alone is a valid block", func(t *testing.T) {
		address := Address{PostalCode: "〒100-0001"}
		assert.Equal(t, "〒100-0001", address.Display())
	})
}

func TestContactField(t *testing.T) {
	contact := Contact{
		CustomFields: []CustomField{
			{Name: "nenga", Value: "1"},
			{Name: "www", Value: "https://example.org"},
		},
	}

	assert.Equal(t, "1", contact.Field("nenga"))
	assert.Equal(t, "https://example.org", contact.Field("www"))
	assert.Equal(t, "", contact.Field("birthday"))
}

func TestContactDisplayName(t *testing.T) {
	contact := Contact{FirstName: "Taichi", LastName: "Kawabata"}

	assert.Equal(t, "Kawabata Taichi", contact.DisplayName(NameFormatLastFirst))
	assert.Equal(t, "Taichi Kawabata", contact.DisplayName(NameFormatFirstLast))
}
