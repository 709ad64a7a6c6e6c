package book

import (
	"context"
	"sync"
	"time"

	"phonebook/contact"
)

// Summary is the read model for one contact.
type Summary struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

type Service interface {
	AddContact(ctx context.Context, name, phone string) error
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	PhonesOf(ctx context.Context, name string) ([]string, error)
	SetBirthday(ctx context.Context, name, birthday string) error
	BirthdayOf(ctx context.Context, name string) (string, error)
	ListContacts(ctx context.Context) ([]Summary, error)
	UpcomingBirthdays(ctx context.Context) ([]UpcomingBirthday, error)
	DeleteContact(ctx context.Context, name string) (bool, error)
}

// Store is the persistence boundary: the whole book is loaded once on start
// and saved once on stop. Load returns a fresh empty book when the backing
// store does not exist yet; any other failure surfaces.
type Store interface {
	Load(ctx context.Context) (*AddressBook, error)
	Save(ctx context.Context, b *AddressBook) error
}

// Usecase serves every command surface from one in-memory AddressBook. The
// mutex only matters for the HTTP surface; the REPL is single-actor.
type Usecase struct {
	mu   sync.Mutex
	book *AddressBook
	now  func() time.Time
}

func NewUsecase(b *AddressBook) *Usecase {
	return &Usecase{
		book: b,
		now:  time.Now,
	}
}

// WithClock overrides the reference time used by the birthday query.
func (uc *Usecase) WithClock(now func() time.Time) *Usecase {
	uc.now = now
	return uc
}

// AddContact creates a fresh record with a single phone number and inserts
// it. An existing contact with the same name is replaced wholesale, not
// merged.
func (uc *Usecase) AddContact(_ context.Context, name, phone string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, err := contact.NewRecord(name)
	if err != nil {
		return err
	}
	if err := r.AddPhone(phone); err != nil {
		return err
	}
	uc.book.Add(r)
	return nil
}

func (uc *Usecase) ChangePhone(_ context.Context, name, oldPhone, newPhone string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, err := uc.book.Find(name)
	if err != nil {
		return err
	}
	return r.EditPhone(oldPhone, newPhone)
}

func (uc *Usecase) PhonesOf(_ context.Context, name string) ([]string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, err := uc.book.Find(name)
	if err != nil {
		return nil, err
	}
	phones := r.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out, nil
}

func (uc *Usecase) SetBirthday(_ context.Context, name, birthday string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, err := uc.book.Find(name)
	if err != nil {
		return err
	}
	return r.SetBirthday(birthday)
}

func (uc *Usecase) BirthdayOf(_ context.Context, name string) (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, err := uc.book.Find(name)
	if err != nil {
		return "", err
	}
	b, ok := r.Birthday()
	if !ok {
		return "", nil
	}
	return b.String(), nil
}

func (uc *Usecase) ListContacts(_ context.Context) ([]Summary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	records := uc.book.Records()
	out := make([]Summary, len(records))
	for i, r := range records {
		s := Summary{Name: r.Name()}
		for _, p := range r.Phones() {
			s.Phones = append(s.Phones, p.String())
		}
		if b, ok := r.Birthday(); ok {
			s.Birthday = b.String()
		}
		out[i] = s
	}
	return out, nil
}

func (uc *Usecase) UpcomingBirthdays(_ context.Context) ([]UpcomingBirthday, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.book.UpcomingBirthdays(uc.now()), nil
}

// DeleteContact reports whether the contact existed; absence is a status,
// not an error.
func (uc *Usecase) DeleteContact(_ context.Context, name string) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.book.Delete(name), nil
}
