package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/rolodex/internal/entities"
)

func TestPhoneByLabel(t *testing.T) {
	contact := entities.Contact{
		Phones: []entities.Phone{
			{Label: "work", Number: "03-1234-5678"},
			{Label: "work2", Number: "03-8765-4321"},
			{Label: "cell", Number: "090-1111-2222"},
		},
	}

	t.Run("returns first entry with exactly matching label", func(t *testing.T) {
		assert.Equal(t, "03-1234-5678", PhoneByLabel(contact, "work"))
		assert.Equal(t, "03-8765-4321", PhoneByLabel(contact, "work2"))
	})

	t.Run("label matching is exact, not prefix or case-insensitive", func(t *testing.T) {
		assert.Equal(t, "", PhoneByLabel(contact, "wor"))
		assert.Equal(t, "", PhoneByLabel(contact, "Work"))
	})

	t.Run("returns empty for missing label", func(t *testing.T) {
		assert.Equal(t, "", PhoneByLabel(contact, "home"))
	})

	t.Run("stringifies structured descriptors", func(t *testing.T) {
		structured := entities.Contact{
			Phones: []entities.Phone{
				{Label: "work", AreaCode: 3, Prefix: 1234, LineNumber: 5678},
			},
		}
		assert.Equal(t, "03-1234-5678", PhoneByLabel(structured, "work"))
	})
}

func TestAddressByLabel(t *testing.T) {
	contact := entities.Contact{
		Addresses: []entities.Address{
			{Label: "home", PostalCode: "〒100-0001", Block: "東京都千代田区1-1\n二号館"},
			{Label: "実家", PostalCode: "〒600-8001", Block: "京都府京都市下京区1-2"},
		},
	}

	t.Run("returns postal code plus block", func(t *testing.T) {
		assert.Equal(t, "〒100-0001\n東京都千代田区1-1\n二号館", AddressByLabel(contact, "home"))
	})

	t.Run("finds non-ASCII labels by exact equality", func(t *testing.T) {
		assert.Equal(t, "〒600-8001\n京都府京都市下京区1-2", AddressByLabel(contact, "実家"))
	})

	t.Run("returns empty for missing label", func(t *testing.T) {
		assert.Equal(t, "", AddressByLabel(contact, "work"))
	})
}

func TestClassifyEmails(t *testing.T) {
	t.Run("classifies work, cell and home by list order", func(t *testing.T) {
		buckets := ClassifyEmails([]string{"a@x.co.jp", "b@docomo.ne.jp", "c@gmail.com"})

		assert.Equal(t, "a@x.co.jp", buckets.Work)
		assert.Equal(t, "b@docomo.ne.jp", buckets.Cell)
		assert.Equal(t, "c@gmail.com", buckets.Home)
	})

	t.Run("first work-domain match wins", func(t *testing.T) {
		buckets := ClassifyEmails([]string{"late@example.ac.jp", "early@example.co.jp"})
		assert.Equal(t, "late@example.ac.jp", buckets.Work)
	})

	t.Run("home is never the chosen work or cell entry", func(t *testing.T) {
		lists := [][]string{
			{"a@x.co.jp", "b@docomo.ne.jp", "c@gmail.com"},
			{"only@ezweb.ne.jp"},
			{"x@example.org", "y@example.net"},
			{"a@b.go.jp", "a@b.go.jp"},
			{},
		}
		for _, emails := range lists {
			buckets := ClassifyEmails(emails)
			if buckets.Home != "" {
				assert.NotEqual(t, buckets.Work, buckets.Home)
				assert.NotEqual(t, buckets.Cell, buckets.Home)
			}
		}
	})

	t.Run("buckets may stay empty", func(t *testing.T) {
		buckets := ClassifyEmails([]string{"solo@ezweb.ne.jp"})
		assert.Equal(t, "", buckets.Work)
		assert.Equal(t, "solo@ezweb.ne.jp", buckets.Cell)
		assert.Equal(t, "", buckets.Home)
	})

	t.Run("empty list yields empty buckets", func(t *testing.T) {
		assert.Equal(t, EmailBuckets{}, ClassifyEmails(nil))
	})
}

func TestSplitFurigana(t *testing.T) {
	t.Run("two tokens split into last and first", func(t *testing.T) {
		last, first := SplitFurigana("タイチ カワバタ")
		assert.Equal(t, "タイチ", last)
		assert.Equal(t, "カワバタ", first)
	})

	t.Run("extra tokens concatenate into the first name", func(t *testing.T) {
		last, first := SplitFurigana("A B C")
		assert.Equal(t, "A", last)
		assert.Equal(t, "BC", first)
	})

	t.Run("single token leaves the first name empty", func(t *testing.T) {
		last, first := SplitFurigana("ヤマダ")
		assert.Equal(t, "ヤマダ", last)
		assert.Equal(t, "", first)
	})

	t.Run("empty input yields empty components", func(t *testing.T) {
		last, first := SplitFurigana("")
		assert.Equal(t, "", last)
		assert.Equal(t, "", first)
	})
}
