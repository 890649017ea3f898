package journal

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// entry text is kept on one line in the text format
var (
	lineEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	lineUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

// Manager saves and loads journals. Journal itself knows nothing about files.
type Manager struct {
	options *options
}

func NewManager(opts ...Option) *Manager {
	return &Manager{options: newOptions(opts...)}
}

// SaveToFile writes j as text, one "Entry N: text" line per entry. Backslashes and line breaks
// in the text are escaped.
func (m *Manager) SaveToFile(j *Journal, path string) error {
	lines := make([]string, 0, j.Len())
	for _, entry := range j.entries {
		lines = append(lines, fmt.Sprintf("Entry %d: %s", entry.Number, lineEscaper.Replace(entry.Text)))
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), m.options.Perm); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	m.options.Logger.Info("journal saved", zap.String("path", path), zap.Int("entries", j.Len()))
	return nil
}

// LoadFromFile reads a journal written by SaveToFile. Blank lines are skipped; a line that is
// not "Entry N: text" becomes the next numbered entry.
func (m *Manager) LoadFromFile(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	var entries []Entry
	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// a line may be as long as the whole file
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, ok := parseLine(line)
		if !ok {
			entry = Entry{Number: count + 1, Text: line}
		}
		entry.Text = lineUnescaper.Replace(entry.Text)
		count = max(count, entry.Number)
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	j := restore(entries, count)
	m.options.Logger.Info("journal loaded", zap.String("path", path), zap.Int("entries", j.Len()))
	return j, nil
}

type document struct {
	Count   int     `json:"count"`
	Entries []Entry `json:"entries"`
}

// SaveJSON writes j as JSON, keeping entry ids and the entry counter.
func (m *Manager) SaveJSON(j *Journal, path string) error {
	data, err := m.Encode(j)
	if err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	if err := os.WriteFile(path, data, m.options.Perm); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	m.options.Logger.Info("journal saved", zap.String("path", path), zap.Int("entries", j.Len()))
	return nil
}

// LoadJSON reads a journal written by SaveJSON.
func (m *Manager) LoadJSON(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	j, err := m.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load journal %s: %w", path, err)
	}
	m.options.Logger.Info("journal loaded", zap.String("path", path), zap.Int("entries", j.Len()))
	return j, nil
}

// Encode returns j as JSON.
func (m *Manager) Encode(j *Journal) ([]byte, error) {
	entries := j.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(document{Count: j.Count(), Entries: entries})
}

// Decode parses JSON produced by Encode.
func (m *Manager) Decode(data []byte) (*Journal, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return restore(doc.Entries, doc.Count), nil
}

func parseLine(line string) (Entry, bool) {
	head, text, ok := strings.Cut(line, ": ")
	if !ok {
		return Entry{}, false
	}
	digits, ok := strings.CutPrefix(head, "Entry ")
	if !ok {
		return Entry{}, false
	}
	number, err := strconv.Atoi(digits)
	if err != nil || number <= 0 {
		return Entry{}, false
	}
	return Entry{Number: number, Text: text}, true
}
