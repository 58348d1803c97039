package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NavItem is one sidebar entry.
type NavItem struct {
	Label string
	Path  string
	Icon  string
}

var navItems = []NavItem{
	{"Dashboard", "/dashboard", "home"},
	{"Users", "/users", "users"},
	{"Students", "/students", "book"},
	{"Attendance", "/attendance", "check"},
	{"Marks", "/marks", "edit"},
	{"Timetable", "/timetable", "calendar"},
	{"Leave Requests", "/leaves", "mail"},
	{"Notices", "/notices", "bell"},
	{"Reports", "/reports", "bar-chart"},
}

// NarrowWidth is the viewport breakpoint below which the sidebar overlays the
// content instead of docking beside it.
const NarrowWidth = 1024

// Sidebar models the navigation drawer state. On a wide viewport the drawer
// is docked open; on a narrow one it overlays and auto-closes.
type Sidebar struct {
	Open   bool
	Narrow bool
}

// NewSidebar starts docked open on a wide viewport, closed on a narrow one.
func NewSidebar(width int) Sidebar {
	narrow := width < NarrowWidth
	return Sidebar{Open: !narrow, Narrow: narrow}
}

func (s *Sidebar) Toggle() { s.Open = !s.Open }

// Resize re-evaluates the breakpoint. Only a crossing changes the drawer:
// into narrow closes it, back to wide re-docks it open.
func (s *Sidebar) Resize(width int) {
	narrow := width < NarrowWidth
	if narrow == s.Narrow {
		return
	}
	s.Narrow = narrow
	s.Open = !narrow
}

// Navigate closes the overlay after following a link on a narrow viewport.
func (s *Sidebar) Navigate() {
	if s.Narrow {
		s.Open = false
	}
}

// Escape dismisses the overlay on a narrow viewport; a docked drawer stays.
func (s *Sidebar) Escape() {
	if s.Narrow {
		s.Open = false
	}
}

const sidebarCookie = "edutrack-sidebar"

// sidebarState restores the drawer state persisted by toggleSidebar.
func sidebarState(ctx echo.Context) Sidebar {
	s := Sidebar{Open: true}
	if c, err := ctx.Cookie(sidebarCookie); err == nil && c.Value == "closed" {
		s.Open = false
	}
	return s
}

// toggleSidebar flips the drawer and sends the user back where they came from.
func (app *webApp) toggleSidebar(ctx echo.Context) error {
	s := sidebarState(ctx)
	s.Toggle()

	value := "open"
	if !s.Open {
		value = "closed"
	}
	ctx.SetCookie(&http.Cookie{
		Name:     sidebarCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})

	back := ctx.Request().Referer()
	if back == "" {
		back = "/dashboard"
	}
	return ctx.Redirect(http.StatusSeeOther, back)
}
