package service

import (
	"fmt"

	"github.com/aliskhannn/cow-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/cow-flashcards-bot/internal/repository"
)

// seqPicker returns the queued indexes in order, wrapping around.
type seqPicker struct {
	seq   []int
	calls int
}

func (p *seqPicker) Pick(n int) int {
	v := p.seq[p.calls%len(p.seq)] % n
	p.calls++
	return v
}

func testCatalog() *repository.CowRepository {
	cows, err := repository.NewCowRepositoryFromEntries([]entities.Cow{
		{Name: "Benny", Image: "benny.jpg"},
		{Name: "Bessie", Image: "bessie.jpg"},
		{Name: "Head Cow", Image: "head_cow.jpg"},
	})
	if err != nil {
		panic(fmt.Sprintf("test catalog: %v", err))
	}
	return cows
}
