// Package draft holds expense entries the user has staged locally but not
// yet submitted. The buffer lives in memory only; it is created empty when
// the staging view opens and discarded on successful submission or teardown.
package draft

import (
	"github.com/google/uuid"

	"github.com/ispolnov/spendcli/internal/models"
)

// Item is one staged expense: a client-generated id plus the payload that
// will eventually be sent. The id never changes and is never reused, even
// after the item is removed.
type Item struct {
	ID      string
	Payload models.ExpensePayload
}

// Buffer is an ordered collection of staged expenses. Insertion order is
// both display order and the order entries are sent in a batch. At most one
// item is being edited at a time, tracked by a cursor separate from the
// items themselves.
//
// Buffer is not safe for concurrent use; it is owned by a single view.
type Buffer struct {
	items     []Item
	editingID string
	newID     func() string
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithIDGenerator overrides the id source, letting tests supply a
// deterministic generator.
func WithIDGenerator(gen func() string) Option {
	return func(b *Buffer) {
		b.newID = gen
	}
}

func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{newID: uuid.NewString}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add validates the payload and appends it with a fresh id. Invalid
// payloads never enter the buffer.
func (b *Buffer) Add(p models.ExpensePayload) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	id := b.newID()
	b.items = append(b.items, Item{ID: id, Payload: p})
	return id, nil
}

// Update validates the payload and replaces the item with the given id,
// preserving its position. An unknown id is a silent no-op: the UI only
// offers edits on items it just listed, so a miss is a caller slip, not a
// user-facing failure.
func (b *Buffer) Update(id string, p models.ExpensePayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Payload = p
			break
		}
	}
	return nil
}

// Remove deletes the item with the given id. If that item was being edited,
// the edit is abandoned.
func (b *Buffer) Remove(id string) {
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	if b.editingID == id {
		b.editingID = ""
	}
}

// Clear empties the buffer and the editing cursor.
func (b *Buffer) Clear() {
	b.items = nil
	b.editingID = ""
}

// BeginEdit points the editing cursor at id and returns the current payload
// for pre-filling an edit form. Returns ok=false when id is not present.
func (b *Buffer) BeginEdit(id string) (models.ExpensePayload, bool) {
	for i := range b.items {
		if b.items[i].ID == id {
			b.editingID = id
			return b.items[i].Payload, true
		}
	}
	return models.ExpensePayload{}, false
}

// CancelEdit clears the editing cursor without touching buffer contents.
func (b *Buffer) CancelEdit() {
	b.editingID = ""
}

// EditingID returns the id under the editing cursor, or "" when none.
func (b *Buffer) EditingID() string {
	return b.editingID
}

func (b *Buffer) Len() int {
	return len(b.items)
}

// Items returns a copy of the staged items in insertion order.
func (b *Buffer) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Payloads snapshots the staged payloads in insertion order, ready to be
// sent as one batch.
func (b *Buffer) Payloads() []models.ExpensePayload {
	out := make([]models.ExpensePayload, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, item.Payload)
	}
	return out
}
