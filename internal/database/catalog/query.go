package catalog

import (
	"database/sql"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SortOrder selects the ORDER BY applied to the catalog listing.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortByTitle
	SortByAuthor
)

// Raw values of the "order" request parameter understood by ParseSortOrder.
const (
	OrderByTitleParam  = "order by title"
	OrderByAuthorParam = "order by author"
)

// ParseSortOrder maps the raw order parameter onto a SortOrder. Unknown
// phrases mean no sorting.
func ParseSortOrder(raw string) SortOrder {
	switch raw {
	case OrderByTitleParam:
		return SortByTitle
	case OrderByAuthorParam:
		return SortByAuthor
	default:
		return SortNone
	}
}

func (s SortOrder) String() string {
	switch s {
	case SortByTitle:
		return "title"
	case SortByAuthor:
		return "author"
	default:
		return "none"
	}
}

func (s SortOrder) column() (clause.Column, bool) {
	switch s {
	case SortByTitle:
		return clause.Column{Table: "books", Name: "title"}, true
	case SortByAuthor:
		return clause.Column{Table: "authors", Name: "name"}, true
	default:
		return clause.Column{}, false
	}
}

// Query describes one catalog read: an optional substring filter over book
// titles and author names plus an optional sort.
type Query struct {
	Search string
	Sort   SortOrder
}

// Normalized returns the query with surrounding whitespace removed from the
// search text.
func (q Query) Normalized() Query {
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// HasSearch reports whether the query filters rows.
func (q Query) HasSearch() bool {
	return strings.TrimSpace(q.Search) != ""
}

// HasSort reports whether the query orders rows.
func (q Query) HasSort() bool {
	return q.Sort != SortNone
}

// predicates lists the WHERE expressions for the query. User text is only
// ever passed as a bound parameter.
func (q Query) predicates() []clause.Expression {
	var preds []clause.Expression
	if q.HasSearch() {
		preds = append(preds, clause.NamedExpr{
			SQL:  "(books.title LIKE @pattern OR authors.name LIKE @pattern)",
			Vars: []any{sql.Named("pattern", "%"+strings.TrimSpace(q.Search)+"%")},
		})
	}
	return preds
}

// build translates the query onto a gorm statement selecting
// (title, author, book_id, isbn) from books joined with authors.
func (q Query) build(db *gorm.DB) *gorm.DB {
	stmt := db.Table("books").
		Select("books.title AS title, authors.name AS author, books.id AS book_id, books.isbn AS isbn").
		Joins("JOIN authors ON books.author_id = authors.id")

	for _, pred := range q.predicates() {
		stmt = stmt.Where(pred)
	}

	if col, ok := q.Sort.column(); ok {
		stmt = stmt.Order(clause.OrderByColumn{Column: col})
	}

	return stmt
}
