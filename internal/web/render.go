package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/jonathan/skillsync/internal/editor"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/types"
	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"inc":  func(i int) int { return i + 1 },
	"orNotSet": func(s string) string {
		if s == "" {
			return "Not set"
		}
		return s
	},
	"duration": editor.FormatDuration,
	"imageURL": imageURL,
}

// imageURL lets profile images through the src sanitizer. Uploads are stored as
// data:image URIs; anything that is neither that nor http(s) is dropped.
func imageURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return template.URL(s)
	}
	return ""
}

// parsePages builds one template set per page: the layout, the shared
// partials, and the page's own "content" block.
func parsePages() (map[string]*template.Template, error) {
	base, err := template.New("layout").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}
	return pages, nil
}

// pageData is what the layout renders around every page.
type pageData struct {
	Title   string
	Notices []session.Notice
	User    *types.User
	Nav     bool
	Content any
}

// render drains the session notices into the page and writes it. Output is
// buffered so a template error never sends half a page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	t, ok := s.pages[name]
	if !ok {
		s.logger.Error("unknown page template", zap.String("page", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	notices, err := s.sessions.Notices(w, r)
	if err != nil {
		s.logger.Warn("failed to read notices", zap.Error(err))
	}
	data.Notices = append(notices, data.Notices...)

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("failed to write page", zap.Error(err))
	}
}
