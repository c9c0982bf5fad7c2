package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed dataset.json
var datasetJSON []byte

var (
	loadOnce sync.Once
	loaded   *Store
	loadErr  error
)

// Store holds the loaded knowledge base. It is immutable after Load and
// safe for concurrent reads without coordination.
type Store struct {
	base Base
	byID map[string]Item
}

// NewStore builds a store from an already-parsed dataset. Load is the
// normal entry point; this exists for custom datasets and tests.
func NewStore(base Base) *Store {
	byID := make(map[string]Item, len(base.Knowledge))
	for _, item := range base.Knowledge {
		byID[item.ID] = item
	}
	return &Store{base: base, byID: byID}
}

// Load parses the embedded dataset exactly once for the process lifetime.
// Subsequent calls return the cached instance.
func Load() (*Store, error) {
	loadOnce.Do(func() {
		var base Base
		if err := json.Unmarshal(datasetJSON, &base); err != nil {
			loadErr = fmt.Errorf("parse knowledge dataset: %w", err)
			return
		}

		loaded = NewStore(base)
	})
	return loaded, loadErr
}

// Items returns the full dataset in insertion order.
func (s *Store) Items() []Item {
	return s.base.Knowledge
}

func (s *Store) ItemByID(id string) (Item, bool) {
	item, ok := s.byID[id]
	return item, ok
}

func (s *Store) ItemsByCategory(category string) []Item {
	var items []Item
	for _, item := range s.base.Knowledge {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

func (s *Store) ItemsByPriority(priority int) []Item {
	var items []Item
	for _, item := range s.base.Knowledge {
		if item.Priority == priority {
			items = append(items, item)
		}
	}
	return items
}

func (s *Store) Categories() map[string]string {
	return s.base.Categories
}

func (s *Store) Sources() []string {
	return s.base.Sources
}
