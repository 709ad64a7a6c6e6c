// Package bot implements the interactive command loop. Handlers translate
// parsed arguments into address book operations and convert every error
// beneath them into a displayable message; no command is fatal to the loop.
package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"phonebook/book"
	"phonebook/errs"
)

const invalidInputMessage = "Invalid input, please try again."

type Bot struct {
	svc   book.Service
	store book.Store
	book  *book.AddressBook
	view  Presenter
}

// New wires the command loop. The store is only touched on shutdown; the
// book it saves is the same instance the service mutates.
func New(svc book.Service, store book.Store, b *book.AddressBook, view Presenter) *Bot {
	return &Bot{
		svc:   svc,
		store: store,
		book:  b,
		view:  view,
	}
}

// AddContact creates a contact with one phone number.
func (b *Bot) AddContact(ctx context.Context, name, phone string) string {
	if err := b.svc.AddContact(ctx, name, phone); err != nil {
		return errs.ErrorMessage(err)
	}
	return fmt.Sprintf("Contact %s added with phone number %s", name, phone)
}

// ChangePhone replaces oldPhone with newPhone on an existing contact.
func (b *Bot) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) string {
	if err := b.svc.ChangePhone(ctx, name, oldPhone, newPhone); err != nil {
		return errs.ErrorMessage(err)
	}
	return fmt.Sprintf("Phone number for %s changed from %s to %s", name, oldPhone, newPhone)
}

// ShowPhones lists a contact's phone numbers.
func (b *Bot) ShowPhones(ctx context.Context, name string) string {
	phones, err := b.svc.PhonesOf(ctx, name)
	if err != nil {
		return errs.ErrorMessage(err)
	}
	return fmt.Sprintf("%s's phones: %s", name, strings.Join(phones, ", "))
}

// AddBirthday sets a contact's birthday.
func (b *Bot) AddBirthday(ctx context.Context, name, birthday string) string {
	if err := b.svc.SetBirthday(ctx, name, birthday); err != nil {
		return errs.ErrorMessage(err)
	}
	return fmt.Sprintf("Birthday for %s added.", name)
}

// ShowBirthday reports a contact's birthday or its absence.
func (b *Bot) ShowBirthday(ctx context.Context, name string) string {
	birthday, err := b.svc.BirthdayOf(ctx, name)
	if err != nil || birthday == "" {
		return fmt.Sprintf("No birthday found for %s.", name)
	}
	return fmt.Sprintf("%s's birthday is %s", name, birthday)
}

// DeleteContact removes a contact, reporting absence as a status message.
func (b *Bot) DeleteContact(ctx context.Context, name string) string {
	deleted, err := b.svc.DeleteContact(ctx, name)
	if err != nil {
		return errs.ErrorMessage(err)
	}
	if !deleted {
		return fmt.Sprintf("Contact %s not found", name)
	}
	return fmt.Sprintf("Contact %s deleted", name)
}

// ShowAllContacts renders every contact through the presenter.
func (b *Bot) ShowAllContacts(ctx context.Context) {
	contacts, err := b.svc.ListContacts(ctx)
	if err != nil {
		b.view.ShowMessage(errs.ErrorMessage(err))
		return
	}
	b.view.ShowContacts(contacts)
}

// ShowUpcomingBirthdays renders birthdays in the next seven days.
func (b *Bot) ShowUpcomingBirthdays(ctx context.Context) {
	upcoming, err := b.svc.UpcomingBirthdays(ctx)
	if err != nil {
		b.view.ShowMessage(errs.ErrorMessage(err))
		return
	}
	if len(upcoming) == 0 {
		b.view.ShowMessage("No upcoming birthdays in the next 7 days.")
		return
	}
	b.view.ShowBirthdays(upcoming)
}

func helpText() string {
	commands := []string{
		"hello, hi, hey - Greeting",
		"add <name> <phone> - Add a contact",
		"change <name> <old_phone> <new_phone> - Change a phone number",
		"phone <name> - Show a contact's phone numbers",
		"all - Show all contacts",
		"delete <name> - Delete a contact",
		"add-birthday <name> <birthday> - Add a birthday (DD.MM.YYYY)",
		"show-birthday <name> - Show a contact's birthday",
		"birthdays - Show upcoming birthdays",
		"close, exit - Quit the program",
	}
	return strings.Join(commands, "\n")
}

// Run reads commands until close/exit, end of input, or ctx cancellation,
// then saves the book. Save errors are the only ones Run returns; command
// errors become messages.
func (b *Bot) Run(ctx context.Context, in io.Reader) error {
	b.view.ShowMessage("Welcome to the assistant bot!")

	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		done <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			// interrupted; persist on a context the cancellation can't reach
			return b.store.Save(context.WithoutCancel(ctx), b.book)
		case err := <-done:
			if err != nil {
				return err
			}
			// input ended without an explicit exit; still persist
			return b.store.Save(ctx, b.book)
		case line := <-lines:
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			command, args := strings.ToLower(fields[0]), fields[1:]

			if command == "close" || command == "exit" {
				if err := b.store.Save(ctx, b.book); err != nil {
					return err
				}
				b.view.ShowMessage("Good bye!")
				return nil
			}
			b.dispatch(ctx, command, args)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, command string, args []string) {
	switch command {
	case "hello", "hi", "hey":
		b.view.ShowMessage("How can I help you?")
	case "add":
		if len(args) < 2 {
			b.view.ShowMessage(invalidInputMessage)
			return
		}
		b.view.ShowMessage(b.AddContact(ctx, args[0], args[1]))
	case "change":
		if len(args) < 3 {
			b.view.ShowMessage(invalidInputMessage)
			return
		}
		b.view.ShowMessage(b.ChangePhone(ctx, args[0], args[1], args[2]))
	case "phone":
		if len(args) < 1 {
			b.view.ShowMessage(invalidInputMessage)
			return
		}
		b.view.ShowMessage(b.ShowPhones(ctx, args[0]))
	case "all":
		b.ShowAllContacts(ctx)
	case "delete":
		if len(args) < 1 {
			b.view.ShowMessage("Please provide the name of the contact to delete.")
			return
		}
		b.view.ShowMessage(b.DeleteContact(ctx, args[0]))
	case "add-birthday":
		if len(args) < 2 {
			b.view.ShowMessage(invalidInputMessage)
			return
		}
		b.view.ShowMessage(b.AddBirthday(ctx, args[0], args[1]))
	case "show-birthday":
		if len(args) < 1 {
			b.view.ShowMessage("Please provide the contact name.")
			return
		}
		b.view.ShowMessage(b.ShowBirthday(ctx, args[0]))
	case "birthdays":
		b.ShowUpcomingBirthdays(ctx)
	case "help":
		b.view.ShowMessage(helpText())
	default:
		b.view.ShowMessage("Invalid command.")
	}
}
