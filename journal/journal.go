// Package journal keeps numbered text entries. Persistence lives in Manager, not in Journal.
package journal

import (
	"fmt"
	"strings"

	"github.com/go-leo/gox/slicex"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Entry is one line of a Journal.
type Entry struct {
	ID     uuid.UUID `json:"id"`
	Number int       `json:"number"`
	Text   string    `json:"text"`
}

func (e Entry) String() string {
	return fmt.Sprintf("Entry %d: %s", e.Number, e.Text)
}

// Journal is not safe for concurrent use.
type Journal struct {
	entries []Entry
	count   int
}

func New() *Journal {
	return &Journal{}
}

// AddEntry appends text as the next numbered entry. Numbers are never reused, even after
// RemoveEntry.
func (j *Journal) AddEntry(text string) Entry {
	j.count++
	entry := Entry{ID: uuid.New(), Number: j.count, Text: text}
	j.entries = append(j.entries, entry)
	return entry
}

// RemoveEntry deletes the entry at pos, counting from zero.
func (j *Journal) RemoveEntry(pos int) error {
	if pos < 0 || pos >= len(j.entries) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, pos, len(j.entries))
	}
	j.entries = slicex.DeleteAll(j.entries, pos)
	return nil
}

// Entries returns a copy of the entries in order.
func (j *Journal) Entries() []Entry {
	return slices.Clone(j.entries)
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// Count returns the number given to the last added entry.
func (j *Journal) Count() int {
	return j.count
}

func (j *Journal) String() string {
	lines := make([]string, 0, len(j.entries))
	for _, entry := range j.entries {
		lines = append(lines, entry.String())
	}
	return strings.Join(lines, "\n")
}

// restore rebuilds a journal from saved entries.
func restore(entries []Entry, count int) *Journal {
	j := &Journal{entries: entries, count: count}
	for i := range j.entries {
		if j.entries[i].ID == uuid.Nil {
			j.entries[i].ID = uuid.New()
		}
		j.count = max(j.count, j.entries[i].Number)
	}
	return j
}
