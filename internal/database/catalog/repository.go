// Package catalog provides database operations for authors, books and the
// joined catalog listing.
//
// # Usage
//
//	repo := catalog.NewRepository(db)
//	rows, err := repo.ListCatalog(catalog.Query{Search: "Hobbit", Sort: catalog.SortByTitle})
package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/library/internal/entities"
)

// ErrBookNotFound is returned by DeleteBook when no book has the given ID.
var ErrBookNotFound = errors.New("book not found")

// Repository handles author, book and catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCatalog runs the catalog query. An empty, non-nil slice is returned
// when nothing matches.
func (r *Repository) ListCatalog(q Query) ([]entities.CatalogRow, error) {
	rows := make([]entities.CatalogRow, 0)
	if err := q.build(r.db).Scan(&rows).Error; err != nil {
		return rows[:0], fmt.Errorf("list catalog: %w", err)
	}
	return rows, nil
}

// IsEmpty reports whether there are neither authors nor books.
func (r *Repository) IsEmpty() (bool, error) {
	var authors, books int64
	if err := r.db.Model(&entities.Author{}).Count(&authors).Error; err != nil {
		return false, fmt.Errorf("count authors: %w", err)
	}
	if err := r.db.Model(&entities.Book{}).Count(&books).Error; err != nil {
		return false, fmt.Errorf("count books: %w", err)
	}
	return authors == 0 && books == 0, nil
}

// CreateAuthor inserts a new author and fills in its ID.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetAuthorByID retrieves an author by its ID.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// ListAuthors returns every author ordered by name.
func (r *Repository) ListAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name ASC").Order("id ASC").Find(&authors).Error
	return authors, err
}

// CreateBook inserts a new book. The referenced author is not created or
// updated; a missing author is rejected by the foreign key.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Omit(clause.Associations).Create(book).Error
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// CountBooksByAuthor returns how many books reference the author.
func (r *Repository) CountBooksByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// DeleteResult describes what DeleteBook removed.
type DeleteResult struct {
	Book entities.Book
	// Author is set when the deleted book was the author's last one and the
	// author was removed as well.
	Author *entities.Author
}

// DeleteBook removes a book and, if no other book references its author,
// the author too. Both steps run in one transaction so a concurrent delete
// of a sibling book cannot observe a half-finished cascade.
func (r *Repository) DeleteBook(id uint) (*DeleteResult, error) {
	var result DeleteResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&result.Book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return fmt.Errorf("load book: %w", err)
		}

		if err := tx.Delete(&entities.Book{}, result.Book.ID).Error; err != nil {
			return fmt.Errorf("delete book: %w", err)
		}

		var remaining int64
		if err := tx.Model(&entities.Book{}).Where("author_id = ?", result.Book.AuthorID).Count(&remaining).Error; err != nil {
			return fmt.Errorf("count remaining books: %w", err)
		}
		if remaining > 0 {
			return nil
		}

		var author entities.Author
		if err := tx.First(&author, result.Book.AuthorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("load author: %w", err)
		}
		if err := tx.Delete(&entities.Author{}, author.ID).Error; err != nil {
			return fmt.Errorf("delete author: %w", err)
		}
		result.Author = &author
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
