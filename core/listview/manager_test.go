package listview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	id      int
	name    string
	roll    string
	class   string
	created time.Time
}

func rowConfig(pageSize int) Config[row] {
	return Config[row]{
		PageSize: pageSize,
		ID:       func(r row) int { return r.id },
		SearchFields: []func(row) string{
			func(r row) string { return r.name },
			func(r row) string { return r.roll },
		},
		Columns: map[string]Column[row]{
			"name":    {Value: func(r row) string { return r.name }},
			"roll":    {Kind: Numeric, Value: func(r row) string { return r.roll }},
			"created": {Kind: Time, Time: func(r row) time.Time { return r.created }},
		},
		Filters: map[string]Predicate[row]{
			"class": Equals(func(r row) string { return r.class }),
		},
		DefaultSort: "name",
	}
}

func makeRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, row{
			id:      i,
			name:    fmt.Sprintf("student %03d", i),
			roll:    fmt.Sprintf("%d", i),
			class:   fmt.Sprintf("%d", i%3),
			created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
		})
	}
	return rows
}

func collectIDs(view View[row]) []int {
	ids := make([]int, 0, len(view.Rows))
	for _, r := range view.Rows {
		ids = append(ids, r.id)
	}
	return ids
}

func TestManager_pagination(t *testing.T) {
	m := NewManager(rowConfig(10))
	m.SetCollection(makeRows(25))

	view := m.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 25, view.Total)
	assert.Len(t, view.Rows, 10)

	// pages partition the filtered set: no dup, no loss
	seen := make(map[int]bool)
	for page := 1; page <= view.TotalPages; page++ {
		m.SetPage(page)
		for _, id := range collectIDs(m.View()) {
			if seen[id] {
				t.Fatalf("row %d appeared on more than one page", id)
			}
			seen[id] = true
		}
	}
	assert.Len(t, seen, 25)

	// the last page holds the remainder
	m.SetPage(3)
	assert.Len(t, m.View().Rows, 5)
}

func TestManager_pageClamping(t *testing.T) {
	m := NewManager(rowConfig(10))
	m.SetCollection(makeRows(25))

	m.SetPage(99)
	assert.Equal(t, 3, m.View().Page)

	m.SetPage(-5)
	assert.Equal(t, 1, m.View().Page)

	// an empty collection still reports page 1 with no pages
	m.SetCollection(nil)
	view := m.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 0, view.TotalPages)
	assert.Empty(t, view.Rows)
}

func TestManager_pageResets(t *testing.T) {
	m := NewManager(rowConfig(10))
	m.SetCollection(makeRows(25))
	m.SetPage(3)
	assert.Equal(t, 3, m.View().Page)

	tests := []struct {
		name  string
		apply func()
	}{
		{"search change", func() { m.SetSearch("student") }},
		{"filter change", func() { m.SetFilter("class", "1") }},
		{"filter cleared", func() { m.SetFilter("class", "all") }},
		{"collection replaced", func() { m.SetCollection(makeRows(25)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetPage(3)
			tt.apply()
			assert.Equal(t, 1, m.View().Page)
		})
	}

	// re-applying the same search or filter value must NOT reset the page
	m2 := NewManager(rowConfig(5))
	m2.SetCollection(makeRows(25))
	m2.SetSearch("student")
	m2.SetFilter("class", "1")
	m2.SetPage(2)
	m2.SetSearch("student")
	m2.SetFilter("class", "1")
	assert.Equal(t, 2, m2.View().Page)
}

func TestManager_searchAndFilters(t *testing.T) {
	m := NewManager(rowConfig(10))
	m.SetCollection([]row{
		{id: 1, name: "Amy", roll: "2", class: "10"},
		{id: 2, name: "Bo", roll: "10", class: "10"},
		{id: 3, name: "Cam", roll: "3", class: "9"},
	})

	// case-insensitive substring over all search fields
	m.SetSearch("am")
	assert.Equal(t, []int{1, 3}, collectIDs(m.View())) // Amy, Cam (name sort)

	// filters AND with search
	m.SetFilter("class", "10")
	assert.Equal(t, []int{1}, collectIDs(m.View()))

	// unknown filter value matches nothing
	m.SetSearch("")
	m.SetFilter("class", "12")
	assert.Empty(t, m.View().Rows)

	// "all" clears the filter
	m.SetFilter("class", "all")
	assert.Len(t, m.View().Rows, 3)
}

func TestManager_sorting(t *testing.T) {
	m := NewManager(rowConfig(10))
	m.SetCollection([]row{
		{id: 1, name: "Amy", roll: "2"},
		{id: 2, name: "Bo", roll: "10"},
		{id: 3, name: "Cam", roll: "9"},
	})

	// numeric column: 2 < 9 < 10
	m.SetSort("roll", Ascending)
	assert.Equal(t, []int{1, 3, 2}, collectIDs(m.View()))

	m.SetSort("roll", Descending)
	assert.Equal(t, []int{2, 3, 1}, collectIDs(m.View()))

	// string column compares lexicographically: "10" < "2" < "9"
	rolls := NewManager(Config[row]{
		PageSize:    10,
		ID:          func(r row) int { return r.id },
		Columns:     map[string]Column[row]{"roll": {Value: func(r row) string { return r.roll }}},
		DefaultSort: "roll",
	})
	rolls.SetCollection([]row{{id: 1, roll: "2"}, {id: 2, roll: "10"}, {id: 3, roll: "9"}})
	assert.Equal(t, []int{2, 1, 3}, collectIDs(rolls.View()))

	// unknown sort key is ignored
	m.SetSort("roll", Ascending)
	m.SetSort("nope", Descending)
	assert.Equal(t, "roll", m.SortKey())
	assert.Equal(t, []int{1, 3, 2}, collectIDs(m.View()))

	// time column
	now := time.Now()
	m.SetCollection([]row{
		{id: 1, created: now.Add(2 * time.Hour)},
		{id: 2, created: now},
		{id: 3, created: now.Add(time.Hour)},
	})
	m.SetSort("created", Ascending)
	assert.Equal(t, []int{2, 3, 1}, collectIDs(m.View()))
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"12A", 12},
		{" 7 ", 7},
		{"", 0},
		{"A12", 0},
		{"0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LeadingInt(tt.in), "LeadingInt(%q)", tt.in)
	}
}

func TestManager_endToEnd(t *testing.T) {
	m := NewManager(rowConfig(10))
	m.SetCollection([]row{
		{id: 1, name: "Amy", roll: "2", class: "10"},
		{id: 2, name: "Bo", roll: "10", class: "10"},
	})

	m.SetSearch("am")
	view := m.View()
	assert.Equal(t, []int{1}, collectIDs(view))
	assert.Equal(t, 1, view.Total)

	m.SetSearch("")
	m.SetSort("roll", Ascending)
	assert.Equal(t, []int{1, 2}, collectIDs(m.View())) // Amy(2) before Bo(10)
}

func TestManager_selection(t *testing.T) {
	m := NewManager(rowConfig(2))
	m.SetCollection(makeRows(5))
	m.SetSort("roll", Ascending)

	m.Toggle(1)
	m.Toggle(3)
	assert.True(t, m.IsSelected(1))
	assert.True(t, m.IsSelected(3))
	assert.Equal(t, []int{1, 3}, m.Selected())

	m.Toggle(3)
	assert.False(t, m.IsSelected(3))

	// ToggleAll only touches the visible page
	m.ClearSelection()
	m.SetPage(1)
	m.ToggleAll()
	assert.Equal(t, []int{1, 2}, m.Selected())

	// all visible selected -> clears everything
	m.ToggleAll()
	assert.Empty(t, m.Selected())

	// partially selected page -> selects the rest of the page
	m.Toggle(1)
	m.ToggleAll()
	assert.Equal(t, []int{1, 2}, m.Selected())

	// ToggleAll on an empty view is a no-op
	m.SetSearch("no such student")
	m.ToggleAll()
	assert.Equal(t, []int{1, 2}, m.Selected())

	m.ClearSelection()
	assert.Empty(t, m.Selected())
}
