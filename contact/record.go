package contact

// Record holds one person's data: a name, an ordered list of phone numbers
// and an optional birthday. Phones keep insertion order and may repeat;
// removal drops only the first matching entry.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns the record's phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the record's birthday, if one has been set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) AddPhone(text string) error {
	p, err := NewPhone(text)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to text. An absent number is a
// silent no-op; only malformed input is an error.
func (r *Record) RemovePhone(text string) error {
	p, err := NewPhone(text)
	if err != nil {
		return err
	}
	for i, existing := range r.phones {
		if existing == p {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			break
		}
	}
	return nil
}

// EditPhone removes oldText and then adds newText. The two steps are not a
// transaction: when newText fails validation the old number is already gone
// and no replacement is added. Callers rely on this exact sequence.
func (r *Record) EditPhone(oldText, newText string) error {
	if err := r.RemovePhone(oldText); err != nil {
		return err
	}
	return r.AddPhone(newText)
}

func (r *Record) FindPhone(text string) (Phone, error) {
	for _, p := range r.phones {
		if p.String() == text {
			return p, nil
		}
	}
	return Phone{}, ErrPhoneNotFound
}

// SetBirthday validates text and replaces any existing birthday.
func (r *Record) SetBirthday(text string) error {
	b, err := NewBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}
