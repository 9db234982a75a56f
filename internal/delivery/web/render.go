package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"ratesmart/internal/delivery/web/assets"
	"ratesmart/internal/domain/entity"
	"ratesmart/internal/errors"
)

// renderer executes one template set per page, each combined with the
// shared layout and partials.
type renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}

		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
	"percent": func(p float64) string {
		return fmt.Sprintf("%.0f%%", p)
	},
	"sentiment": func(s entity.Sentiment) string {
		switch s {
		case entity.SentimentPositive:
			return "😊 Positive"
		case entity.SentimentNeutral:
			return "😐 Neutral"
		case entity.SentimentNegative:
			return "☹ Negative"
		default:
			return "N/A"
		}
	},
	"dict": func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, errors.New("dict needs key/value pairs")
		}
		m := make(map[string]any, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, errors.Errorf("dict key %v is not a string", pairs[i])
			}
			m[key] = pairs[i+1]
		}

		return m, nil
	},
	"list": func(items ...string) []string {
		return items
	},
	"orNA": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "N/A"
		}

		return s
	},
}

func newRenderer() (*renderer, error) {
	shared := []string{"templates/layout.html", "templates/partials.html"}

	files, err := fs.Glob(assets.Templates, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" || name == "partials" {
			continue
		}

		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(assets.Templates, append(shared, file)...)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", file)
		}
		pages[name] = tmpl
	}

	return &renderer{pages: pages}, nil
}

func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}
