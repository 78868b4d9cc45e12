package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/barcart/barcart/web"
)

// BasePage carries layout-level data available to every template.
type BasePage struct {
	Title string
	Flash *Flash
}

// pageCache maps a render key (e.g. "browse.html") to a compiled template set
// containing base.html + partials + that one page file. Each page gets its
// own set so {{define "content"}} blocks don't collide.
var pageCache map[string]*template.Template

func init() {
	partials, err := fs.Glob(web.TemplateFS, "templates/partials/*.html")
	if err != nil {
		panic("glob partials: " + err.Error())
	}

	pageCache = make(map[string]*template.Template)
	err = fs.WalkDir(web.TemplateFS, "templates/pages", func(p string, d fs.DirEntry, e error) error {
		if e != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return e
		}

		files := make([]string, 0, 2+len(partials))
		files = append(files, "templates/base.html")
		files = append(files, partials...)
		files = append(files, p)

		t, err := template.New("").ParseFS(web.TemplateFS, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		pageCache[filepath.Base(p)] = t
		return nil
	})
	if err != nil {
		panic("build page cache: " + err.Error())
	}
}

// Flash represents a one-time notification message shown to the user.
type Flash struct {
	Type    string // "success", "error", "info"
	Message string
}

// render executes a full-page template (base layout + named page).
func render(w http.ResponseWriter, tmpl string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t, ok := pageCache[tmpl]
	if !ok {
		http.Error(w, "template not found: "+tmpl, http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
	}
}
