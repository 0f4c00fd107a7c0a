package http

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/library/internal/entities"
)

// AuthorForm is the POST /add_author payload.
type AuthorForm struct {
	Name        string `form:"name" binding:"required"`
	BirthDate   string `form:"birth_date" binding:"required,datetime=2006-01-02"`
	DateOfDeath string `form:"date_of_death" binding:"omitempty,datetime=2006-01-02"`
}

// Author converts the validated form into an entity. An empty death date is
// stored as NULL.
func (f AuthorForm) Author() (*entities.Author, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	born, err := time.Parse(entities.DateLayout, strings.TrimSpace(f.BirthDate))
	if err != nil {
		return nil, errors.New("birth_date must be a date in YYYY-MM-DD format")
	}

	author := &entities.Author{Name: name, BirthDate: born}
	if died := strings.TrimSpace(f.DateOfDeath); died != "" {
		d, err := time.Parse(entities.DateLayout, died)
		if err != nil {
			return nil, errors.New("date_of_death must be a date in YYYY-MM-DD format")
		}
		author.DateOfDeath = &d
	}
	return author, nil
}

// BookForm is the POST /add_book payload. Numeric fields arrive as text so
// that a malformed value yields a field-level message instead of a binding
// error.
type BookForm struct {
	Title           string `form:"title" binding:"required"`
	ISBN            string `form:"isbn"`
	PublicationYear string `form:"publication_year" binding:"omitempty,number"`
	AuthorID        string `form:"author_id" binding:"required,number"`
}

func (f BookForm) Book() (*entities.Book, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	authorID, err := strconv.ParseUint(strings.TrimSpace(f.AuthorID), 10, 32)
	if err != nil {
		return nil, errors.New("author_id must be a whole number")
	}

	book := &entities.Book{
		Title:    title,
		ISBN:     strings.TrimSpace(f.ISBN),
		AuthorID: uint(authorID),
	}
	if year := strings.TrimSpace(f.PublicationYear); year != "" {
		book.PublicationYear, err = strconv.Atoi(year)
		if err != nil {
			return nil, errors.New("publication_year must be a whole number")
		}
	}
	return book, nil
}

var registerFormNames sync.Once

// useFormFieldNames makes validation errors report the form field name
// ("birth_date") instead of the Go field name ("BirthDate").
func useFormFieldNames() {
	registerFormNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// bindForm binds the request form into dst and returns a user-facing message
// describing every invalid field.
func bindForm(c *gin.Context, dst any) (string, bool) {
	useFormFieldNames()

	err := c.ShouldBindWith(dst, binding.Form)
	if err == nil {
		return "", true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return formatValidationErrors(verrs), false
	}
	return "Invalid form submission: " + err.Error(), false
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return strings.Join(messages, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "number":
		return field + " must be a whole number"
	default:
		return field + " is invalid (" + fe.Tag() + ")"
	}
}
