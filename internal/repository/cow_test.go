package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
)

func TestBuiltInCatalog(t *testing.T) {
	repo, err := NewCowRepository("")
	require.NoError(t, err)

	require.Equal(t, 39, repo.Size())

	first, err := repo.EntryAt(0)
	require.NoError(t, err)
	assert.Equal(t, entities.Cow{Name: "Amnesty", Image: "amnesty.jpg"}, first)

	headCow, err := repo.EntryAt(8)
	require.NoError(t, err)
	assert.Equal(t, entities.Cow{Name: "Head Cow", Image: "head_cow.jpg"}, headCow)

	last, err := repo.EntryAt(repo.Size() - 1)
	require.NoError(t, err)
	assert.Equal(t, "Wizard", last.Name)
}

func TestCatalogKeepsSourceOrder(t *testing.T) {
	repo, err := NewCowRepositoryFromJSON([]byte(`{"cows": [
		{"name": "Tom", "image": "tom.jpg"},
		{"name": "Amnesty", "image": "amnesty.jpg"},
		{"name": "Mush", "image": "mush.jpg"}
	]}`))
	require.NoError(t, err)

	var names []string
	for i := 0; i < repo.Size(); i++ {
		c, err := repo.EntryAt(i)
		require.NoError(t, err)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Tom", "Amnesty", "Mush"}, names)
}

func TestCatalogEntryAtOutOfRange(t *testing.T) {
	repo, err := NewCowRepository("")
	require.NoError(t, err)

	for _, idx := range []int{-1, repo.Size(), repo.Size() + 10} {
		_, err := repo.EntryAt(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	src := []entities.Cow{{Name: "Leo", Image: "leo.jpg"}}
	repo, err := NewCowRepositoryFromEntries(src)
	require.NoError(t, err)

	src[0].Name = "Changed"
	all := repo.All()
	all[0].Name = "Changed too"

	c, err := repo.EntryAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Leo", c.Name)
}

func TestCatalogValidation(t *testing.T) {
	tests := []struct {
		name string
		cows []entities.Cow
		is   error
	}{
		{name: "empty", cows: nil, is: ErrEmptyCatalog},
		{name: "blank name", cows: []entities.Cow{{Name: " ", Image: "a.jpg"}}},
		{name: "padded name", cows: []entities.Cow{{Name: "Leo ", Image: "leo.jpg"}}},
		{name: "blank image", cows: []entities.Cow{{Name: "Leo"}}},
		{name: "duplicate ignoring case", cows: []entities.Cow{
			{Name: "Leo", Image: "leo.jpg"},
			{Name: "LEO", Image: "leo2.jpg"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCowRepositoryFromEntries(tt.cows)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestNewCowRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cows.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cows": [{"name": "Percy", "image": "percy.png"}]}`), 0o644))

	repo, err := NewCowRepository(path)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Size())

	_, err = NewCowRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"cows": [`), 0o644))
	_, err = NewCowRepository(bad)
	assert.Error(t, err)
}
