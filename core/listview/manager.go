// Package listview implements the list screen contract shared by every entity
// page: search, filters, sort, pagination and page-scoped bulk selection over a
// collection fetched from the backend.
package listview

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

type Order int

const (
	Ascending Order = iota
	Descending
)

// Kind decides how a column compares. String columns compare lexicographically
// (case-sensitive); Numeric columns coerce values to integers so "9" sorts
// before "10"; Time columns compare instants.
type Kind int

const (
	String Kind = iota
	Numeric
	Time
)

type Column[T any] struct {
	Kind  Kind
	Value func(T) string
	Time  func(T) time.Time
}

// Predicate keeps a record when it satisfies the active filter value.
type Predicate[T any] func(record T, value string) bool

// Equals builds the common equality predicate on a string field.
func Equals[T any](field func(T) string) Predicate[T] {
	return func(record T, value string) bool { return field(record) == value }
}

// Config declares the page-specific parts of a list screen.
type Config[T any] struct {
	PageSize     int
	ID           func(T) int
	SearchFields []func(T) string
	Columns      map[string]Column[T]
	Filters      map[string]Predicate[T]
	DefaultSort  string
	DefaultOrder Order
}

// Manager holds one screen's ephemeral list state. Any change to the
// collection, the search text or a filter resets the current page to 1;
// changing the page alone never re-runs filtering or sorting.
type Manager[T any] struct {
	cfg Config[T]

	collection []T
	search     string
	filters    map[string]string
	sortKey    string
	order      Order
	page       int

	selected map[int]bool
}

func NewManager[T any](cfg Config[T]) *Manager[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return &Manager[T]{
		cfg:      cfg,
		filters:  make(map[string]string),
		sortKey:  cfg.DefaultSort,
		order:    cfg.DefaultOrder,
		page:     1,
		selected: make(map[int]bool),
	}
}

// SetCollection replaces the fetched records wholesale.
func (m *Manager[T]) SetCollection(records []T) {
	m.collection = records
	m.page = 1
}

func (m *Manager[T]) SetSearch(text string) {
	if m.search == text {
		return
	}
	m.search = text
	m.page = 1
}

// SetFilter activates a filter; an empty value or "all" clears it.
func (m *Manager[T]) SetFilter(key, value string) {
	if value == "" || value == "all" {
		if _, ok := m.filters[key]; !ok {
			return
		}
		delete(m.filters, key)
	} else {
		if m.filters[key] == value {
			return
		}
		m.filters[key] = value
	}
	m.page = 1
}

func (m *Manager[T]) SetSort(key string, order Order) {
	if _, ok := m.cfg.Columns[key]; !ok {
		return
	}
	m.sortKey = key
	m.order = order
}

func (m *Manager[T]) SortKey() string { return m.sortKey }
func (m *Manager[T]) SortOrder() Order { return m.order }

// SetPage moves to the requested page; it is clamped into [1, totalPages] when
// the view is derived.
func (m *Manager[T]) SetPage(page int) { m.page = page }

// View is the derived visible state of the list.
type View[T any] struct {
	Rows       []T
	Page       int
	TotalPages int
	Total      int // filtered record count
	PageSize   int
}

// View derives the current page of rows: search, then filters (AND), then
// sort, then paginate.
func (m *Manager[T]) View() View[T] {
	filtered := m.filteredSorted()

	size := m.cfg.PageSize
	totalPages := (len(filtered) + size - 1) / size

	page := m.page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View[T]{
		Rows:       filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
		PageSize:   size,
	}
}

func (m *Manager[T]) filteredSorted() []T {
	filtered := make([]T, 0, len(m.collection))

	search := strings.ToLower(m.search)
	for _, record := range m.collection {
		if search != "" && !m.matchesSearch(record, search) {
			continue
		}
		if !m.matchesFilters(record) {
			continue
		}
		filtered = append(filtered, record)
	}

	col, ok := m.cfg.Columns[m.sortKey]
	if !ok {
		return filtered
	}
	less := lessFunc(col)
	sort.SliceStable(filtered, func(i, j int) bool {
		if m.order == Descending {
			i, j = j, i
		}
		return less(filtered[i], filtered[j])
	})
	return filtered
}

func (m *Manager[T]) matchesSearch(record T, search string) bool {
	for _, field := range m.cfg.SearchFields {
		if strings.Contains(strings.ToLower(field(record)), search) {
			return true
		}
	}
	return false
}

func (m *Manager[T]) matchesFilters(record T) bool {
	for key, value := range m.filters {
		pred, ok := m.cfg.Filters[key]
		if !ok {
			continue
		}
		if !pred(record, value) {
			return false
		}
	}
	return true
}

func lessFunc[T any](col Column[T]) func(a, b T) bool {
	switch col.Kind {
	case Numeric:
		return func(a, b T) bool { return LeadingInt(col.Value(a)) < LeadingInt(col.Value(b)) }
	case Time:
		return func(a, b T) bool { return col.Time(a).Before(col.Time(b)) }
	default:
		return func(a, b T) bool { return col.Value(a) < col.Value(b) }
	}
}

// LeadingInt coerces a numeric-looking value ("12", "12A") to an integer;
// anything unparsable counts as 0. It is the coercion behind Numeric columns.
func LeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Selection

// Toggle flips one row's membership in the selection set.
func (m *Manager[T]) Toggle(id int) {
	if m.selected[id] {
		delete(m.selected, id)
	} else {
		m.selected[id] = true
	}
}

// ToggleAll toggles between "all rows on the current page selected" and
// "none selected". Selection is scoped to the visible rows, never the full
// filtered set.
func (m *Manager[T]) ToggleAll() {
	view := m.View()
	if m.allVisibleSelected(view.Rows) {
		m.selected = make(map[int]bool)
		return
	}
	for _, record := range view.Rows {
		m.selected[m.cfg.ID(record)] = true
	}
}

func (m *Manager[T]) allVisibleSelected(rows []T) bool {
	if len(rows) == 0 {
		return false
	}
	for _, record := range rows {
		if !m.selected[m.cfg.ID(record)] {
			return false
		}
	}
	return true
}

func (m *Manager[T]) IsSelected(id int) bool { return m.selected[id] }

func (m *Manager[T]) ClearSelection() { m.selected = make(map[int]bool) }

// Selected returns the selected ids in ascending order.
func (m *Manager[T]) Selected() []int {
	ids := make([]int, 0, len(m.selected))
	for id := range m.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
