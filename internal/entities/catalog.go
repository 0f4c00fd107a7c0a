package entities

import "time"

// DateLayout is the wire and form format for author dates.
const DateLayout = "2006-01-02"

type Author struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"index;size:256" json:"name"`
	BirthDate   time.Time  `gorm:"type:date" json:"birth_date"`
	DateOfDeath *time.Time `gorm:"type:date" json:"date_of_death,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

type Book struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ISBN            string `gorm:"column:isbn;index;size:20" json:"isbn"`
	Title           string `gorm:"index;size:512" json:"title"`
	PublicationYear int    `json:"publication_year"`
	AuthorID        uint   `gorm:"not null;index" json:"author_id"`

	// Author is only used to declare the FK; it is never preloaded.
	Author Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

// CatalogRow is one line of the catalog listing: a book joined with its author.
type CatalogRow struct {
	Title  string `gorm:"column:title" json:"title"`
	Author string `gorm:"column:author" json:"author"`
	BookID uint   `gorm:"column:book_id" json:"book_id"`
	ISBN   string `gorm:"column:isbn" json:"isbn"`
}
