// Package contacts provides database operations for contact management.
package contacts

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/rolodex/internal/entities"
)

// Repository handles all contact database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new contacts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// preloaded attaches all sub-collections to a contact query. Emails
// keep their stored position order; the classification heuristics in
// the export pipeline depend on it.
func (r *Repository) preloaded() *gorm.DB {
	return r.db.Preload("Emails", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Phones").Preload("Addresses").Preload("CustomFields")
}

// GetContactByID retrieves a contact by its ID with all related data.
func (r *Repository) GetContactByID(id uint) (*entities.Contact, error) {
	var contact entities.Contact
	err := r.preloaded().First(&contact, id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetContactByName retrieves a contact by last and first name.
func (r *Repository) GetContactByName(lastName, firstName string) (*entities.Contact, error) {
	var contact entities.Contact
	err := r.preloaded().
		Where("last_name = ? AND first_name = ?", lastName, firstName).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetAllContacts retrieves all contacts with their sub-collections.
// The ordering is the store's own and is stable for one export pass.
func (r *Repository) GetAllContacts() ([]entities.Contact, error) {
	var contacts []entities.Contact
	err := r.preloaded().
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&contacts).Error
	return contacts, err
}

// SearchContacts searches contacts by name or organization
// (case-insensitive partial match).
func (r *Repository) SearchContacts(query string) ([]entities.Contact, error) {
	var contacts []entities.Contact
	searchPattern := "%" + query + "%"
	err := r.preloaded().
		Where("LOWER(last_name) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?) OR LOWER(organization) LIKE LOWER(?)",
			searchPattern, searchPattern, searchPattern).
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&contacts).Error
	return contacts, err
}

// SaveContact upserts a contact by last and first name, replacing its
// sub-collections with the given ones.
func (r *Repository) SaveContact(contact *entities.Contact) error {
	var existing entities.Contact
	result := r.db.Where("last_name = ? AND first_name = ?", contact.LastName, contact.FirstName).
		First(&existing)

	if result.Error == nil {
		contact.ID = existing.ID
		if err := r.deleteSubCollections(r.db, existing.ID); err != nil {
			return fmt.Errorf("failed to replace contact sub-fields: %w", err)
		}
		return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(contact).Error
	}
	if result.Error == gorm.ErrRecordNotFound {
		return r.db.Create(contact).Error
	}
	return result.Error
}

// DeleteContact hard deletes a contact and all its sub-fields.
func (r *Repository) DeleteContact(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.deleteSubCollections(tx, id); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entities.Contact{}, id).Error
	})
}

func (r *Repository) deleteSubCollections(tx *gorm.DB, contactID uint) error {
	for _, model := range []interface{}{
		&entities.Email{},
		&entities.Phone{},
		&entities.Address{},
		&entities.CustomField{},
	} {
		if err := tx.Where("contact_id = ?", contactID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
