// Package theme loads a named bundle of templates and static assets.
//
// A themes root holds one directory per theme:
//
//	<name>/templates/*.html   page templates, rendered by name without extension
//	<name>/templates/partials shared fragments, referenced as "partials/<file>"
//	<name>/static/            assets served under /static
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// Theme is a loaded template set plus its static assets.
type Theme struct {
	Name   string
	Views  fiber.Views
	Static http.FileSystem
}

// Load parses every template of the named theme found under root.
// An unknown theme or a template that fails to parse is an error.
func Load(root fs.FS, name string) (*Theme, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid theme name %q", name)
	}
	dir, err := fs.Sub(root, name)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	templates, err := subDir(dir, "templates")
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}

	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.AddFunc("join", strings.Join)
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("theme %s: load templates: %w", name, err)
	}

	t := &Theme{Name: name, Views: engine}
	if static, err := subDir(dir, "static"); err == nil {
		t.Static = http.FS(static)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return t, nil
}

func subDir(fsys fs.FS, dir string) (fs.FS, error) {
	st, err := fs.Stat(fsys, dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return fs.Sub(fsys, dir)
}
