package book

import (
	"time"

	"phonebook/contact"
	"phonebook/errs"
)

var ErrRecordNotFound = errs.Errorf(errs.ENOTFOUND, "contact not found")

// UpcomingWindowDays is the length of the inclusive trailing window the
// birthday query covers, starting at the reference date.
const UpcomingWindowDays = 7

// AddressBook keys contact records by name. Iteration follows key insertion
// order; overwriting an existing name keeps its original position.
type AddressBook struct {
	records map[string]*contact.Record
	order   []string
}

func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*contact.Record),
	}
}

// Add inserts the record under its name, overwriting any previous record
// with the same name. It never fails.
func (b *AddressBook) Add(r *contact.Record) {
	key := r.Name()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

func (b *AddressBook) Find(name string) (*contact.Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return r, nil
}

// Delete removes the entry for name and reports whether it was present.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

func (b *AddressBook) Len() int {
	return len(b.records)
}

// UpcomingBirthday pairs a contact name with their birthday re-anchored to
// the query's year.
type UpcomingBirthday struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays lists contacts whose birthday, re-anchored to today's
// year, falls within [today, today+7] inclusive. The year is always today's
// year, never next year's: a birthday that already passed in December is not
// reported in late December. A February 29 birthday re-anchored onto a
// non-leap year lands on March 1 via time.Date normalization.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, UpcomingWindowDays)

	var upcoming []UpcomingBirthday
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		d := bd.Date()
		next := time.Date(start.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if !next.Before(start) && !next.After(end) {
			upcoming = append(upcoming, UpcomingBirthday{
				Name: r.Name(),
				Date: next,
			})
		}
	}
	return upcoming
}
