package echoweb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSidebar(t *testing.T) {
	wide := NewSidebar(1280)
	assert.True(t, wide.Open)
	assert.False(t, wide.Narrow)

	narrow := NewSidebar(768)
	assert.False(t, narrow.Open)
	assert.True(t, narrow.Narrow)

	// the breakpoint itself counts as wide
	atEdge := NewSidebar(NarrowWidth)
	assert.True(t, atEdge.Open)
}

func TestSidebarToggle(t *testing.T) {
	s := NewSidebar(1280)
	s.Toggle()
	assert.False(t, s.Open)
	s.Toggle()
	assert.True(t, s.Open)
}

func TestSidebarResize(t *testing.T) {
	s := NewSidebar(1280)

	// shrinking across the breakpoint closes the drawer
	s.Resize(700)
	assert.True(t, s.Narrow)
	assert.False(t, s.Open)

	// opening it manually survives a resize that stays narrow
	s.Toggle()
	s.Resize(600)
	assert.True(t, s.Open)

	// growing back across the breakpoint re-docks it open
	s.Toggle()
	s.Resize(1280)
	assert.False(t, s.Narrow)
	assert.True(t, s.Open)

	// a wide-to-wide resize never touches a closed drawer
	s.Toggle()
	s.Resize(1400)
	assert.False(t, s.Open)
}

func TestSidebarNavigateAndEscape(t *testing.T) {
	// on a narrow viewport both close the overlay
	s := NewSidebar(700)
	s.Toggle()
	s.Navigate()
	assert.False(t, s.Open)

	s.Toggle()
	s.Escape()
	assert.False(t, s.Open)

	// on a wide viewport the docked drawer stays put
	w := NewSidebar(1280)
	w.Navigate()
	assert.True(t, w.Open)
	w.Escape()
	assert.True(t, w.Open)
}
