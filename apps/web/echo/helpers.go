package echoweb

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Pacchu9832/Edutrack-admin/core/listview"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

// bindList applies the screen's URL query state (q, sort, order, page and the
// named filters) to a freshly loaded list manager and derives the page view.
func bindList[T any](ctx echo.Context, m *listview.Manager[T], filterKeys ...string) listview.View[T] {
	m.SetSearch(ctx.QueryParam("q"))
	for _, key := range filterKeys {
		m.SetFilter(key, ctx.QueryParam(key))
	}
	if key := ctx.QueryParam("sort"); key != "" {
		order := listview.Ascending
		if ctx.QueryParam("order") == "desc" {
			order = listview.Descending
		}
		m.SetSort(key, order)
	}
	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil {
		m.SetPage(page)
	}
	return m.View()
}

// intParam parses a numeric path parameter.
func intParam(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

// maxUploadSize caps profile image uploads at 5 MiB, matching the backend.
const maxUploadSize = 5 << 20

// formUpload extracts an optional file attachment from a multipart submission.
// A missing file is not an error; the form simply goes out without one.
func formUpload(ctx echo.Context, field string) (*edusvc.Upload, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		// missing file, or no multipart body at all
		return nil, nil
	}
	if fh.Size > maxUploadSize {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "image exceeds the 5MB limit")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		return nil, errors.Wrap(err, "reading uploaded file")
	}
	return &edusvc.Upload{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// redirectBack sends the user to target with a flash message, preserving the
// screen's query state when back is the referring list URL.
func redirectBack(ctx echo.Context, target, flash string) error {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/dashboard"}
	}
	q := u.Query()
	if flash != "" {
		q.Set("flash", flash)
	}
	u.RawQuery = q.Encode()
	return ctx.Redirect(http.StatusSeeOther, u.String())
}
