package echoweb

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

//go:embed templates static
var assetsFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	// withParam rebuilds the current query string with one parameter replaced,
	// keeping search/filter/sort state across page and sort links.
	"withParam": func(q url.Values, key, value string) string {
		next := url.Values{}
		for k, vs := range q {
			next[k] = append([]string(nil), vs...)
		}
		next.Set(key, value)
		return next.Encode()
	},
	// sortLink toggles to descending when the column is already the ascending
	// sort key.
	"sortLink": func(q url.Values, key, current string, order listview.Order) string {
		next := url.Values{}
		for k, vs := range q {
			next[k] = append([]string(nil), vs...)
		}
		next.Set("sort", key)
		if key == current && order == listview.Ascending {
			next.Set("order", "desc")
		} else {
			next.Del("order")
		}
		return next.Encode()
	},
	"itoa": strconv.Itoa,
	"list": func(items ...string) []string { return items },
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i + 1
		}
		return s
	},
	"trim":  strings.TrimSpace,
	"join":  strings.Join,
	"grade": school.CalculateGrade,
	"desc":  func(o listview.Order) bool { return o == listview.Descending },
}

// renderer pairs every page template with the shared layout; templates under
// standalone/ (login, error, print view) render on their own.
type renderer struct {
	templates map[string]boundTemplate
}

type boundTemplate struct {
	t     *template.Template
	entry string // template name executed for this page
}

var _ echo.Renderer = (*renderer)(nil)

func newRenderer() *renderer {
	r := &renderer{templates: make(map[string]boundTemplate)}

	// pages define a "content" block rendered inside the layout
	pages, err := fs.Glob(assetsFS, "templates/pages/*.html")
	if err != nil {
		panic(errors.Wrap(err, "globbing page templates"))
	}
	for _, page := range pages {
		t := template.Must(
			template.New("layout.html").
				Funcs(templateFuncs).
				ParseFS(assetsFS, "templates/layout.html", page),
		)
		r.templates[path.Base(page)] = boundTemplate{t: t, entry: "layout.html"}
	}

	standalone, err := fs.Glob(assetsFS, "templates/standalone/*.html")
	if err != nil {
		panic(errors.Wrap(err, "globbing standalone templates"))
	}
	for _, page := range standalone {
		name := path.Base(page)
		t := template.Must(
			template.New(name).
				Funcs(templateFuncs).
				ParseFS(assetsFS, page),
		)
		r.templates[name] = boundTemplate{t: t, entry: name}
	}
	return r
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, ctx echo.Context) error {
	bound, ok := r.templates[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	// layout chrome: nav items, sidebar state, active path, flash, session user
	if m, ok := data.(echo.Map); ok {
		if _, set := m["Nav"]; !set {
			m["Nav"] = navItems
		}
		m["Sidebar"] = sidebarState(ctx)
		m["Path"] = ctx.Request().URL.Path
		m["Flash"] = ctx.QueryParam("flash")
		if sess := currentSession(ctx); sess.Valid() {
			m["CurrentUser"] = *sess.User
		}
	}
	return errors.Wrapf(bound.t.ExecuteTemplate(w, bound.entry, data), "rendering %s", name)
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(assetsFS, "static")
	if err != nil {
		panic(errors.Wrap(err, "mounting static assets"))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
