package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportReport() Report {
	return Report{
		Kind:        KindMarks,
		Title:       "Marks Report",
		Scope:       Scope{Class: "10", Subject: "Mathematics"},
		GeneratedAt: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		Summary: []Stat{
			{"Students", "2"},
			{"Pass %", "50.0"},
		},
		Header: []string{"Roll No", "Student", "Total"},
		Rows: [][]string{
			{"1", "Shah, Aarav", "92"}, // the comma forces quoting
			{"2", "Meera Iyer", "30"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportReport().WriteCSV(&buf))

	want := `Marks Report,class-10-mathematics,2024-06-01
Students,2
Pass %,50.0

Roll No,Student,Total
1,"Shah, Aarav",92
2,Meera Iyer,30
`
	if got := buf.String(); got != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		t.Errorf("csv mismatch:\n%s", diff)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	rep := exportReport()
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep, decoded)

	assert.Contains(t, buf.String(), "\n  \"kind\": \"marks\"")
	assert.Contains(t, buf.String(), "\"generated_at\"")
}
