// Package mock provides test doubles for oreum interfaces using function fields.
package mock

import (
	"context"

	"github.com/oreum-app/oreum"
)

// Interface compliance checks.
var (
	_ oreum.Model        = (*Model)(nil)
	_ oreum.Chat         = (*Chat)(nil)
	_ oreum.Storage      = (*Storage)(nil)
	_ oreum.JournalStore = (*JournalStore)(nil)
)

// Model is a test double for oreum.Model.
type Model struct {
	GenerateFn func(ctx context.Context, req oreum.GenerateRequest) (string, error)
	NewChatFn  func(ctx context.Context, systemPrompt string) (oreum.Chat, error)
}

// Generate delegates to GenerateFn.
func (m *Model) Generate(ctx context.Context, req oreum.GenerateRequest) (string, error) {
	return m.GenerateFn(ctx, req)
}

// NewChat delegates to NewChatFn.
func (m *Model) NewChat(ctx context.Context, systemPrompt string) (oreum.Chat, error) {
	return m.NewChatFn(ctx, systemPrompt)
}

// Chat is a test double for oreum.Chat.
type Chat struct {
	SendFn func(ctx context.Context, text string) (string, error)
}

// Send delegates to SendFn.
func (c *Chat) Send(ctx context.Context, text string) (string, error) {
	return c.SendFn(ctx, text)
}

// Storage is a test double for oreum.Storage.
type Storage struct {
	GetFn    func(key string) (string, bool, error)
	SetFn    func(key, value string) error
	DeleteFn func(key string) error
}

// Get delegates to GetFn.
func (s *Storage) Get(key string) (string, bool, error) {
	return s.GetFn(key)
}

// Set delegates to SetFn.
func (s *Storage) Set(key, value string) error {
	return s.SetFn(key, value)
}

// Delete delegates to DeleteFn.
func (s *Storage) Delete(key string) error {
	return s.DeleteFn(key)
}

// JournalStore is a test double for oreum.JournalStore.
type JournalStore struct {
	CreateFn func(ctx context.Context, e oreum.JournalEntry) (oreum.JournalEntry, error)
	ListFn   func(ctx context.Context, limit int) ([]oreum.JournalEntry, error)
}

// Create delegates to CreateFn.
func (s *JournalStore) Create(ctx context.Context, e oreum.JournalEntry) (oreum.JournalEntry, error) {
	return s.CreateFn(ctx, e)
}

// List delegates to ListFn.
func (s *JournalStore) List(ctx context.Context, limit int) ([]oreum.JournalEntry, error) {
	return s.ListFn(ctx, limit)
}
