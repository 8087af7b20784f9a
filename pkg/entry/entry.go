// Package entry defines the persisted journal record.
package entry

import (
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/dietlog/pkg/category"
)

// LogItem is a single journal entry. It is never edited in place: a change
// is a delete followed by a new entry.
type LogItem struct {
	ID       string            `json:"id" yaml:"id"`
	Category category.Category `json:"category" yaml:"category"`
	Content  string            `json:"content" yaml:"content"`
	// Date is the logical day (YYYY-MM-DD) the user filed the entry under.
	Date string `json:"date" yaml:"date"`
	// Timestamp orders entries within Date, in epoch milliseconds. It is not
	// a creation time.
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	ImageURL  string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// New returns an item with a fresh random id.
func New(c category.Category, content, date string, timestamp int64) LogItem {
	return LogItem{
		ID:        NewID(),
		Category:  c,
		Content:   content,
		Date:      date,
		Timestamp: timestamp,
	}
}

// NewID returns an opaque identifier that is not reused.
func NewID() string {
	return uuid.NewString()
}

func (e LogItem) String() string {
	return fmt.Sprintf("%s %s: %s", e.Date, e.Category.Label(), e.Content)
}
