package bot

import (
	"fmt"
	"io"
	"strings"

	"phonebook/book"
	"phonebook/contact"
)

// Presenter renders results for the user. The domain never sees it; only the
// command handlers do.
type Presenter interface {
	ShowMessage(msg string)
	ShowContacts(contacts []book.Summary)
	ShowBirthdays(birthdays []book.UpcomingBirthday)
}

// ConsolePresenter writes plain text lines to Out.
type ConsolePresenter struct {
	Out io.Writer
}

func (p *ConsolePresenter) ShowMessage(msg string) {
	fmt.Fprintln(p.Out, msg)
}

func (p *ConsolePresenter) ShowContacts(contacts []book.Summary) {
	for _, c := range contacts {
		birthday := c.Birthday
		if birthday == "" {
			birthday = "No birthday"
		}
		fmt.Fprintf(p.Out, "Name: %s, Phone: %s, Birthday: %s\n",
			c.Name, strings.Join(c.Phones, ", "), birthday)
	}
}

func (p *ConsolePresenter) ShowBirthdays(birthdays []book.UpcomingBirthday) {
	for _, b := range birthdays {
		fmt.Fprintf(p.Out, "Name: %s, Birthday: %s\n",
			b.Name, b.Date.Format(contact.BirthdayLayout))
	}
}

// CapturePresenter records everything shown. Used by tests.
type CapturePresenter struct {
	Messages  []string
	Contacts  [][]book.Summary
	Birthdays [][]book.UpcomingBirthday
}

func (p *CapturePresenter) ShowMessage(msg string) {
	p.Messages = append(p.Messages, msg)
}

func (p *CapturePresenter) ShowContacts(contacts []book.Summary) {
	p.Contacts = append(p.Contacts, contacts)
}

func (p *CapturePresenter) ShowBirthdays(birthdays []book.UpcomingBirthday) {
	p.Birthdays = append(p.Birthdays, birthdays)
}
