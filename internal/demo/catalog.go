// Package demo ships a small sample catalog for trying the application out.
package demo

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/library/internal/entities"
)

//go:embed assets/catalog.json
var embeddedAssets embed.FS

// ErrCatalogNotEmpty is returned by Seed when data exists and force is off.
var ErrCatalogNotEmpty = errors.New("catalog already contains data")

type sampleBook struct {
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
}

type sampleAuthor struct {
	Name        string       `json:"name"`
	BirthDate   string       `json:"birth_date"`
	DateOfDeath string       `json:"date_of_death"`
	Books       []sampleBook `json:"books"`
}

type sampleCatalog struct {
	Authors []sampleAuthor `json:"authors"`
}

// Store is what Seed needs from the catalog repository.
type Store interface {
	IsEmpty() (bool, error)
	CreateAuthor(author *entities.Author) error
	CreateBook(book *entities.Book) error
}

// SeedResult counts what Seed inserted.
type SeedResult struct {
	Authors int
	Books   int
}

// Seed inserts the embedded sample authors and books. Unless force is set
// it refuses to touch a catalog that already has rows.
func Seed(store Store, force bool) (SeedResult, error) {
	var result SeedResult

	if !force {
		empty, err := store.IsEmpty()
		if err != nil {
			return result, fmt.Errorf("check catalog: %w", err)
		}
		if !empty {
			return result, ErrCatalogNotEmpty
		}
	}

	sample, err := loadSample()
	if err != nil {
		return result, err
	}

	for _, a := range sample.Authors {
		author, err := a.entity()
		if err != nil {
			return result, err
		}
		if err := store.CreateAuthor(author); err != nil {
			return result, fmt.Errorf("create author %q: %w", a.Name, err)
		}
		result.Authors++

		for _, b := range a.Books {
			book := &entities.Book{
				Title:           b.Title,
				ISBN:            b.ISBN,
				PublicationYear: b.PublicationYear,
				AuthorID:        author.ID,
			}
			if err := store.CreateBook(book); err != nil {
				return result, fmt.Errorf("create book %q: %w", b.Title, err)
			}
			result.Books++
		}
	}

	return result, nil
}

func loadSample() (*sampleCatalog, error) {
	data, err := embeddedAssets.ReadFile("assets/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	var sample sampleCatalog
	if err := json.Unmarshal(data, &sample); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return &sample, nil
}

func (a sampleAuthor) entity() (*entities.Author, error) {
	born, err := time.Parse(entities.DateLayout, a.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("author %q: birth date: %w", a.Name, err)
	}
	author := &entities.Author{Name: a.Name, BirthDate: born}
	if a.DateOfDeath != "" {
		died, err := time.Parse(entities.DateLayout, a.DateOfDeath)
		if err != nil {
			return nil, fmt.Errorf("author %q: date of death: %w", a.Name, err)
		}
		author.DateOfDeath = &died
	}
	return author, nil
}
