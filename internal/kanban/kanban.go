// Package kanban holds the lightweight action board shown next to the
// meeting list. Cards are append-only for the life of the process.
package kanban

import (
	"errors"

	"github.com/google/uuid"
)

// ErrColumnNotFound is returned when a card targets an unknown column.
var ErrColumnNotFound = errors.New("kanban column not found")

// Card is one item on the board.
type Card struct {
	ID      string
	Content string
}

// Column is an ordered lane of cards.
type Column struct {
	ID    string
	Title string
	Cards []Card
}

// Board is the three-lane action board.
type Board struct {
	Columns []Column
}

// NewBoard seeds the default empty lanes.
func NewBoard() *Board {
	return &Board{
		Columns: []Column{
			{ID: "todo", Title: "To Do"},
			{ID: "doing", Title: "In Progress"},
			{ID: "done", Title: "Done"},
		},
	}
}

// Add appends a card to the named column.
func (b *Board) Add(columnID, content string) (Card, error) {
	for i := range b.Columns {
		if b.Columns[i].ID != columnID {
			continue
		}
		card := Card{ID: uuid.NewString(), Content: content}
		b.Columns[i].Cards = append(b.Columns[i].Cards, card)
		return card, nil
	}
	return Card{}, ErrColumnNotFound
}

// Column looks up a lane by id.
func (b *Board) Column(id string) (*Column, bool) {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i], true
		}
	}
	return nil, false
}
