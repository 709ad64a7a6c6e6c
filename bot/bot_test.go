package bot_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phonebook/book"
	"phonebook/bot"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (*book.AddressBook, error) {
	args := m.Called(ctx)
	return args.Get(0).(*book.AddressBook), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, b *book.AddressBook) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func newBot() (*bot.Bot, *bot.CapturePresenter, *MockStore, *book.AddressBook) {
	b := book.New()
	uc := book.NewUsecase(b).WithClock(func() time.Time {
		return time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	})
	view := new(bot.CapturePresenter)
	store := new(MockStore)
	return bot.New(uc, store, b, view), view, store, b
}

func TestBot_AddContact(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms added contact", func(t *testing.T) {
		b, _, _, _ := newBot()

		msg := b.AddContact(ctx, "Ann", "0671234567")

		assert.Equal(t, "Contact Ann added with phone number 0671234567", msg)
	})

	t.Run("reports validation failure as message", func(t *testing.T) {
		b, _, _, _ := newBot()

		assert.Equal(t, "invalid phone number", b.AddContact(ctx, "Ann", "12345"))
		assert.Equal(t, "name cannot be empty", b.AddContact(ctx, "", "0671234567"))
	})
}

func TestBot_ChangePhone(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms changed phone", func(t *testing.T) {
		b, _, _, _ := newBot()
		b.AddContact(ctx, "Ann", "0671234567")

		msg := b.ChangePhone(ctx, "Ann", "0671234567", "0997654321")

		assert.Equal(t, "Phone number for Ann changed from 0671234567 to 0997654321", msg)
	})

	t.Run("reports unknown contact as message", func(t *testing.T) {
		b, _, _, _ := newBot()

		msg := b.ChangePhone(ctx, "Ann", "0671234567", "0997654321")

		assert.Equal(t, "contact not found", msg)
	})
}

func TestBot_ShowPhones(t *testing.T) {
	ctx := context.Background()
	b, _, _, ab := newBot()
	b.AddContact(ctx, "Ann", "0671234567")
	r, err := ab.Find("Ann")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("0997654321"))

	assert.Equal(t, "Ann's phones: 0671234567, 0997654321", b.ShowPhones(ctx, "Ann"))
	assert.Equal(t, "contact not found", b.ShowPhones(ctx, "Bob"))
}

func TestBot_Birthdays(t *testing.T) {
	ctx := context.Background()

	t.Run("add and show birthday", func(t *testing.T) {
		b, _, _, _ := newBot()
		b.AddContact(ctx, "Ann", "0671234567")

		assert.Equal(t, "Birthday for Ann added.", b.AddBirthday(ctx, "Ann", "12.06.1990"))
		assert.Equal(t, "Ann's birthday is 12.06.1990", b.ShowBirthday(ctx, "Ann"))
	})

	t.Run("missing birthday and missing contact read the same", func(t *testing.T) {
		b, _, _, _ := newBot()
		b.AddContact(ctx, "Ann", "0671234567")

		assert.Equal(t, "No birthday found for Ann.", b.ShowBirthday(ctx, "Ann"))
		assert.Equal(t, "No birthday found for Bob.", b.ShowBirthday(ctx, "Bob"))
	})

	t.Run("rejects malformed date as message", func(t *testing.T) {
		b, _, _, _ := newBot()
		b.AddContact(ctx, "Ann", "0671234567")

		msg := b.AddBirthday(ctx, "Ann", "12-06-1990")

		assert.Equal(t, "invalid date format, use DD.MM.YYYY", msg)
	})
}

func TestBot_DeleteContact(t *testing.T) {
	ctx := context.Background()
	b, _, _, _ := newBot()
	b.AddContact(ctx, "Ann", "0671234567")

	assert.Equal(t, "Contact Ann deleted", b.DeleteContact(ctx, "Ann"))
	assert.Equal(t, "Contact Ann not found", b.DeleteContact(ctx, "Ann"))
}

func TestBot_ShowAllContacts(t *testing.T) {
	ctx := context.Background()
	b, view, _, _ := newBot()
	b.AddContact(ctx, "Ann", "0671234567")
	b.AddBirthday(ctx, "Ann", "12.06.1990")
	b.AddContact(ctx, "Bob", "0997654321")

	b.ShowAllContacts(ctx)

	require.Len(t, view.Contacts, 1)
	assert.Equal(t, []book.Summary{
		{Name: "Ann", Phones: []string{"0671234567"}, Birthday: "12.06.1990"},
		{Name: "Bob", Phones: []string{"0997654321"}},
	}, view.Contacts[0])
}

func TestBot_ShowUpcomingBirthdays(t *testing.T) {
	ctx := context.Background()

	t.Run("shows contacts inside the window", func(t *testing.T) {
		b, view, _, _ := newBot()
		b.AddContact(ctx, "Ann", "0671234567")
		b.AddBirthday(ctx, "Ann", "12.06.1990")
		b.AddContact(ctx, "Bob", "0997654321")
		b.AddBirthday(ctx, "Bob", "01.01.1985")

		b.ShowUpcomingBirthdays(ctx)

		require.Len(t, view.Birthdays, 1)
		require.Len(t, view.Birthdays[0], 1)
		assert.Equal(t, "Ann", view.Birthdays[0][0].Name)
	})

	t.Run("falls back to a message when the window is empty", func(t *testing.T) {
		b, view, _, _ := newBot()

		b.ShowUpcomingBirthdays(ctx)

		assert.Equal(t, []string{"No upcoming birthdays in the next 7 days."}, view.Messages)
		assert.Empty(t, view.Birthdays)
	})
}

func TestBot_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("processes a session and saves on exit", func(t *testing.T) {
		b, view, store, ab := newBot()
		store.On("Save", mock.Anything, ab).Return(nil).Once()

		input := strings.Join([]string{
			"hello",
			"add Ann 0671234567",
			"phone Ann",
			"nonsense",
			"exit",
		}, "\n")

		err := b.Run(ctx, strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Welcome to the assistant bot!",
			"How can I help you?",
			"Contact Ann added with phone number 0671234567",
			"Ann's phones: 0671234567",
			"Invalid command.",
			"Good bye!",
		}, view.Messages)
		store.AssertExpectations(t)
	})

	t.Run("keeps running after errors", func(t *testing.T) {
		b, view, store, _ := newBot()
		store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		input := strings.Join([]string{
			"add Ann 123",
			"phone Bob",
			"add",
			"delete",
			"add Ann 0671234567",
			"close",
		}, "\n")

		err := b.Run(ctx, strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Welcome to the assistant bot!",
			"invalid phone number",
			"contact not found",
			"Invalid input, please try again.",
			"Please provide the name of the contact to delete.",
			"Contact Ann added with phone number 0671234567",
			"Good bye!",
		}, view.Messages)
	})

	t.Run("saves when input ends without exit", func(t *testing.T) {
		b, _, store, ab := newBot()
		store.On("Save", mock.Anything, ab).Return(nil).Once()

		err := b.Run(ctx, strings.NewReader("add Ann 0671234567\n"))

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("saves when the context is cancelled mid-session", func(t *testing.T) {
		b, _, store, ab := newBot()
		store.On("Save", mock.Anything, ab).Return(nil).Once()

		// a pipe with no writer blocks like an idle terminal
		in, _ := io.Pipe()
		runCtx, cancel := context.WithCancel(context.Background())

		errc := make(chan error, 1)
		go func() { errc <- b.Run(runCtx, in) }()
		cancel()

		select {
		case err := <-errc:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Run did not stop on cancellation")
		}
		store.AssertExpectations(t)
	})
}
