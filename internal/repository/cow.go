package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/cow-flashcards-bot/assets"
	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
)

var (
	ErrEmptyCatalog    = errors.New("cow catalog is empty")
	ErrIndexOutOfRange = errors.New("cow index out of range")
)

// CowRepository is the read-only catalog of cows.
// Entries keep the order of the source definition.
type CowRepository struct {
	cows []entities.Cow
}

// NewCowRepository loads the catalog from the JSON file at path,
// or from the built-in catalog when path is empty.
func NewCowRepository(path string) (*CowRepository, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.CowsJSON()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read cow catalog: %w", err)
	}

	return NewCowRepositoryFromJSON(data)
}

// NewCowRepositoryFromJSON parses and validates a catalog document of the
// form {"cows": [{"name": ..., "image": ...}]}.
func NewCowRepositoryFromJSON(data []byte) (*CowRepository, error) {
	var wrapper struct {
		Cows []entities.Cow `json:"cows"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cows JSON: %w", err)
	}

	return NewCowRepositoryFromEntries(wrapper.Cows)
}

// NewCowRepositoryFromEntries builds a catalog from entries, copying them.
func NewCowRepositoryFromEntries(cows []entities.Cow) (*CowRepository, error) {
	if err := validateCows(cows); err != nil {
		return nil, err
	}

	owned := make([]entities.Cow, len(cows))
	copy(owned, cows)

	return &CowRepository{cows: owned}, nil
}

// Size returns the number of cows in the catalog.
func (r *CowRepository) Size() int {
	return len(r.cows)
}

// EntryAt returns the cow at index.
func (r *CowRepository) EntryAt(index int) (entities.Cow, error) {
	if index < 0 || index >= len(r.cows) {
		return entities.Cow{}, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(r.cows))
	}
	return r.cows[index], nil
}

// All returns a copy of every cow in catalog order.
func (r *CowRepository) All() []entities.Cow {
	out := make([]entities.Cow, len(r.cows))
	copy(out, r.cows)
	return out
}

func validateCows(cows []entities.Cow) error {
	if len(cows) == 0 {
		return ErrEmptyCatalog
	}

	// Names equal under case folding would accept the same guess.
	seen := make(map[string]int, len(cows))
	for i, c := range cows {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("cow %d: empty name", i)
		}
		if name != c.Name {
			return fmt.Errorf("cow %d: name %q has surrounding whitespace", i, c.Name)
		}
		if strings.TrimSpace(c.Image) == "" {
			return fmt.Errorf("cow %d (%s): empty image", i, c.Name)
		}

		key := strings.ToLower(name)
		if j, ok := seen[key]; ok {
			return fmt.Errorf("cow %d (%s): duplicate of cow %d", i, c.Name, j)
		}
		seen[key] = i
	}

	return nil
}
