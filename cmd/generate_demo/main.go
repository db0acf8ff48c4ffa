// Command generate_demo creates a demo contact database with sample data.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/rolodex/internal/database"
	"github.com/mrlokans/rolodex/internal/database/contacts"
	"github.com/mrlokans/rolodex/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := contacts.NewRepository(db.DB)
	for _, contact := range demoContacts() {
		if err := repo.SaveContact(&contact); err != nil {
			log.Printf("Failed to save contact %s %s: %v", contact.LastName, contact.FirstName, err)
			continue
		}
		log.Printf("Saved: %s %s (%d emails, %d phones, %d addresses)",
			contact.LastName, contact.FirstName,
			len(contact.Emails), len(contact.Phones), len(contact.Addresses))
	}

	log.Printf("Demo database generated at %s", *dbPath)
}

func demoContacts() []entities.Contact {
	return []entities.Contact{
		{
			LastName:     "Kawabata",
			FirstName:    "Taichi",
			Organization: "Example Research Institute",
			Furigana:     "カワバタ タイチ",
			Emails: []entities.Email{
				{Address: "taichi@example.co.jp", Position: 0},
				{Address: "kawabata@docomo.ne.jp", Position: 1},
				{Address: "taichi.k@gmail.com", Position: 2},
			},
			Phones: []entities.Phone{
				{Label: entities.LabelWork, Number: "03-1234-5678"},
				{Label: entities.LabelCell, Number: "090-1111-2222"},
			},
			Addresses: []entities.Address{
				{
					Label:      entities.LabelHome,
					PostalCode: "〒100-0001",
					Block:      "東京都千代田区千代田1-1\nサンプルマンション203",
				},
				{
					Label:      entities.LabelJikka,
					PostalCode: "〒600-8001",
					Block:      "京都府京都市下京区四条通1-2",
				},
			},
			CustomFields: []entities.CustomField{
				{Name: entities.FieldNenga, Value: "1"},
				{Name: entities.FieldWWW, Value: "https://example.org/~taichi"},
				{Name: entities.FieldBirthday, Value: "1972-04-01"},
			},
		},
		{
			LastName:     "Yamada",
			FirstName:    "Hanako",
			Organization: "Yamada Design Office",
			Furigana:     "ヤマダ ハナコ",
			Emails: []entities.Email{
				{Address: "hanako@yamada-design.com", Position: 0},
				{Address: "hanako@i.softbank.jp", Position: 1},
			},
			Phones: []entities.Phone{
				{Label: entities.LabelWork, AreaCode: 6, Prefix: 6543, LineNumber: 2100},
				{Label: entities.LabelHome, Number: "06-7654-3210"},
			},
			Addresses: []entities.Address{
				{
					Label:      entities.LabelWork,
					PostalCode: "〒530-0001",
					Block:      "大阪府大阪市北区梅田2-3-4",
				},
			},
			CustomFields: []entities.CustomField{
				{Name: entities.FieldNameFormat, Value: "first-last"},
				{Name: entities.FieldNotes, Value: "Met at the 2019 design conference."},
			},
		},
		{
			LastName:  "Smith",
			FirstName: "Alice",
			Emails: []entities.Email{
				{Address: "alice@example.net", Position: 0},
			},
			Phones: []entities.Phone{
				{Label: entities.LabelCell, Number: "080-9999-0000"},
			},
			CustomFields: []entities.CustomField{
				{Name: entities.FieldNenga, Value: "1"},
			},
		},
	}
}
