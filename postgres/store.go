package postgres

import (
	"context"

	"gorm.io/gorm"

	"phonebook/book"
	"phonebook/contact"
)

// ContactModel represents the database model for contacts.
// Position preserves the book's insertion order across restarts.
type ContactModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null;uniqueIndex"`
	Birthday *string
	Position int          `gorm:"not null;default:0"`
	Phones   []PhoneModel `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// PhoneModel represents one phone number row, ordered within its contact.
type PhoneModel struct {
	ID        uint   `gorm:"primaryKey"`
	ContactID uint   `gorm:"not null;index"`
	Position  int    `gorm:"not null;default:0"`
	Number    string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PhoneModel) TableName() string {
	return "phones"
}

// Store implements book.Store as a whole-book snapshot over the contacts and
// phones tables.
type Store struct {
	db *gorm.DB
}

var _ book.Store = (*Store)(nil)

// NewStore creates a snapshot store on top of an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load reads every row and rebuilds the book through the domain
// constructors. An empty database yields an empty book.
func (s *Store) Load(ctx context.Context) (*book.AddressBook, error) {
	var models []ContactModel
	err := s.db.WithContext(ctx).
		Preload("Phones", func(db *gorm.DB) *gorm.DB {
			return db.Order("phones.position, phones.id")
		}).
		Order("position, id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	b := book.New()
	for _, m := range models {
		r, err := contact.NewRecord(m.Name)
		if err != nil {
			return nil, err
		}
		for _, p := range m.Phones {
			if err := r.AddPhone(p.Number); err != nil {
				return nil, err
			}
		}
		if m.Birthday != nil {
			if err := r.SetBirthday(*m.Birthday); err != nil {
				return nil, err
			}
		}
		b.Add(r)
	}
	return b, nil
}

// Save replaces the stored snapshot with the book's current state in one
// transaction.
func (s *Store) Save(ctx context.Context, b *book.AddressBook) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM phones").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM contacts").Error; err != nil {
			return err
		}

		for i, r := range b.Records() {
			m := ContactModel{
				Name:     r.Name(),
				Position: i,
			}
			if bd, ok := r.Birthday(); ok {
				v := bd.String()
				m.Birthday = &v
			}
			for j, p := range r.Phones() {
				m.Phones = append(m.Phones, PhoneModel{
					Position: j,
					Number:   p.String(),
				})
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
