// Package leaderboard keeps the persistent top-ten high score table.
//
// The whole table lives in a single key-value slot as a JSON array, read
// and rewritten on every change. The table is small and writes are rare
// (one per finished round at most), so a slot beats a schema.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// Table configuration constants.
const (
	MaxEntries    = 10
	maxNameRunes  = 24
	anonymousName = "Anonymous"
	slotKey       = "top"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Result reports what happened to a submitted score.
type Result struct {
	Qualified bool
	Position  int // 1-based rank; 0 when not qualified
	Entries   []Entry
}

// Board is the persistent high score table. Safe for concurrent use.
type Board struct {
	kv  store.KV
	now func() time.Time

	mu sync.Mutex
}

// New creates a Board over the given store.
func New(kv store.KV, opts ...Option) *Board {
	b := &Board{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// List returns the current table, highest score first.
func (b *Board) List(ctx context.Context) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

// Qualifies reports whether a score would earn a spot on the table: either
// the table has room, or the score beats the current lowest entry.
func (b *Board) Qualifies(ctx context.Context, score int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := b.load(ctx)
	if err != nil {
		return false, err
	}
	return qualifies(entries, score), nil
}

// Submit records a score under the given name. Names are trimmed, capped,
// and defaulted; a score that does not qualify leaves the table untouched.
func (b *Board) Submit(ctx context.Context, name string, score int) (Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := b.load(ctx)
	if err != nil {
		return Result{}, err
	}
	if !qualifies(entries, score) {
		return Result{Qualified: false, Entries: entries}, nil
	}

	entry := Entry{
		Name:  SanitizeName(name),
		Score: score,
		Date:  b.now().UTC(),
	}
	entries = append(entries, entry)
	sortEntries(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	if err := b.save(ctx, entries); err != nil {
		return Result{}, err
	}
	metrics.RecordLeaderboardSave()
	metrics.UpdateLeaderboardSize(len(entries))

	position := 0
	for i := range entries {
		if entries[i] == entry {
			position = i + 1
			break
		}
	}
	return Result{Qualified: position > 0, Position: position, Entries: entries}, nil
}

// Reset clears the table.
func (b *Board) Reset(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.kv.Delete(ctx, store.NamespaceLeaderboard, slotKey); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	metrics.RecordLeaderboardReset()
	metrics.UpdateLeaderboardSize(0)
	return nil
}

// load reads the slot. A missing or corrupt slot is an empty table.
func (b *Board) load(ctx context.Context) ([]Entry, error) {
	value, ok, err := b.kv.Get(ctx, store.NamespaceLeaderboard, slotKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !ok {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(value, &entries); err != nil {
		return []Entry{}, nil
	}
	sortEntries(entries)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries, nil
}

func (b *Board) save(ctx context.Context, entries []Entry) error {
	value, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if err := b.kv.Set(ctx, store.NamespaceLeaderboard, slotKey, value); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func qualifies(entries []Entry, score int) bool {
	if score <= 0 {
		return false
	}
	if len(entries) < MaxEntries {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// sortEntries orders by score descending; ties go to the earlier date.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Date.Before(entries[j].Date)
	})
}

// SanitizeName normalizes a submitted player name: whitespace trimmed,
// capped at 24 runes, empty replaced with "Anonymous".
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return anonymousName
	}
	if utf8.RuneCountInString(name) > maxNameRunes {
		runes := []rune(name)
		name = string(runes[:maxNameRunes])
		name = strings.TrimSpace(name)
		if name == "" {
			return anonymousName
		}
	}
	return name
}
