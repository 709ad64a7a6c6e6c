package contact

import (
	"time"

	"phonebook/errs"
)

var (
	ErrEmptyName       = errs.Errorf(errs.EINVALID, "name cannot be empty")
	ErrInvalidPhone    = errs.Errorf(errs.EINVALID, "invalid phone number")
	ErrInvalidBirthday = errs.Errorf(errs.EINVALID, "invalid date format, use DD.MM.YYYY")
	ErrPhoneNotFound   = errs.Errorf(errs.ENOTFOUND, "phone number not found")
)

// BirthdayLayout is the wire format for birthdays: zero-padded day and month,
// four-digit year.
const BirthdayLayout = "02.01.2006"

// Name identifies a record within the address book.
type Name struct {
	value string
}

func NewName(text string) (Name, error) {
	if len(text) == 0 {
		return Name{}, ErrEmptyName
	}
	return Name{value: text}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated 10-digit phone number. Two Phones are equal iff their
// digit strings match.
type Phone struct {
	value string
}

func NewPhone(text string) (Phone, error) {
	if len(text) != 10 {
		return Phone{}, ErrInvalidPhone
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return Phone{}, ErrInvalidPhone
		}
	}
	return Phone{value: text}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date parsed from DD.MM.YYYY text. time.Parse rejects
// impossible dates (31.02, 29.02 outside leap years), so a constructed
// Birthday always denotes a real day.
type Birthday struct {
	value time.Time
}

func NewBirthday(text string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, text)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{value: d}, nil
}

func (b Birthday) String() string {
	return b.value.Format(BirthdayLayout)
}

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time {
	return b.value
}
