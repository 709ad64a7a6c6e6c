// Package yamlstore persists the whole address book as one YAML document.
package yamlstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"phonebook/book"
	"phonebook/contact"
)

type Store struct {
	path string
}

var _ book.Store = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

type snapshot struct {
	Contacts []contactDoc `yaml:"contacts"`
}

type contactDoc struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty"`
}

// Load reads the snapshot file. A missing file yields a fresh empty book;
// snapshot entries pass back through the domain constructors, so a corrupted
// file surfaces a validation error instead of a half-built book.
func (s *Store) Load(_ context.Context) (*book.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("yamlstore: read %s: %w", s.path, err)
	}

	var doc snapshot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlstore: parse %s: %w", s.path, err)
	}

	b := book.New()
	for _, c := range doc.Contacts {
		r, err := contact.NewRecord(c.Name)
		if err != nil {
			return nil, err
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, err
			}
		}
		if c.Birthday != "" {
			if err := r.SetBirthday(c.Birthday); err != nil {
				return nil, err
			}
		}
		b.Add(r)
	}
	return b, nil
}

// Save writes the whole book, creating parent directories as needed.
func (s *Store) Save(_ context.Context, b *book.AddressBook) error {
	doc := snapshot{}
	for _, r := range b.Records() {
		c := contactDoc{Name: r.Name()}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if bd, ok := r.Birthday(); ok {
			c.Birthday = bd.String()
		}
		doc.Contacts = append(doc.Contacts, c)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("yamlstore: marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("yamlstore: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("yamlstore: write %s: %w", s.path, err)
	}
	return nil
}
