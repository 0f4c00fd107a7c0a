package http

import (
	"embed"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/session"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

var templateFuncs = template.FuncMap{
	"orderByTitle":  func() string { return catalog.OrderByTitleParam },
	"orderByAuthor": func() string { return catalog.OrderByAuthorParam },
}

// LoadTemplates parses the page templates from dir, or the embedded set when
// dir is empty.
func LoadTemplates(dir string) (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs)
	if dir == "" {
		return tmpl.ParseFS(embeddedTemplates, "templates/*.html")
	}
	parsed, err := tmpl.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	return parsed, nil
}

// page adds the values every template expects to data.
func page(c *gin.Context, data gin.H) gin.H {
	data["CSRFField"] = session.CSRFFieldName
	data["CSRFToken"] = session.GetCSRFToken(c)
	return data
}
