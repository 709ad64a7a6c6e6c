package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"phonebook/book"
	"phonebook/contact"
)

// Store implements book.Store with one item per contact, keyed by name.
type Store struct {
	client *dynamodb.Client
	table  string
}

var _ book.Store = (*Store)(nil)

type contactItem struct {
	Name     string   `dynamodbav:"name"`
	Phones   []string `dynamodbav:"phones,omitempty"`
	Birthday string   `dynamodbav:"birthday,omitempty"`
	Position int      `dynamodbav:"position"`
}

// NewStore binds the snapshot store to its table. The table name is checked
// here once so Load and Save never issue requests against an empty name.
func NewStore(client *dynamodb.Client, table string) (*Store, error) {
	if strings.TrimSpace(table) == "" {
		return nil, errors.New("dynamodb: table name is required")
	}
	return &Store{
		client: client,
		table:  table,
	}, nil
}

// Load scans the whole table and rebuilds the book, restoring insertion
// order from the stored positions.
func (s *Store) Load(ctx context.Context) (*book.AddressBook, error) {
	items, err := s.scanItems(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	b := book.New()
	for _, item := range items {
		r, err := contact.NewRecord(item.Name)
		if err != nil {
			return nil, err
		}
		for _, p := range item.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, err
			}
		}
		if item.Birthday != "" {
			if err := r.SetBirthday(item.Birthday); err != nil {
				return nil, err
			}
		}
		b.Add(r)
	}
	return b, nil
}

// Save replaces the table contents with the book's current state: stale
// items are deleted, current records are put.
func (s *Store) Save(ctx context.Context, b *book.AddressBook) error {
	existing, err := s.scanItems(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]bool, b.Len())
	for _, r := range b.Records() {
		keep[r.Name()] = true
	}
	for _, item := range existing {
		if keep[item.Name] {
			continue
		}
		_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: &s.table,
			Key: map[string]types.AttributeValue{
				"name": &types.AttributeValueMemberS{Value: item.Name},
			},
		})
		if err != nil {
			return fmt.Errorf("dynamodb: delete contact: %w", err)
		}
	}

	for i, r := range b.Records() {
		item := contactItem{
			Name:     r.Name(),
			Position: i,
		}
		for _, p := range r.Phones() {
			item.Phones = append(item.Phones, p.String())
		}
		if bd, ok := r.Birthday(); ok {
			item.Birthday = bd.String()
		}

		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return fmt.Errorf("dynamodb: marshal contact: %w", err)
		}
		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: &s.table,
			Item:      av,
		})
		if err != nil {
			return fmt.Errorf("dynamodb: put contact: %w", err)
		}
	}
	return nil
}

func (s *Store) scanItems(ctx context.Context) ([]contactItem, error) {
	var items []contactItem
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName: &s.table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan contacts: %w", err)
		}

		var page []contactItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal contacts: %w", err)
		}
		items = append(items, page...)
	}
	return items, nil
}
