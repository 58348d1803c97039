package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pacchu9832/Edutrack-admin/core"
	"github.com/Pacchu9832/Edutrack-admin/core/school"
	"github.com/Pacchu9832/Edutrack-admin/core/session"
	edusvc "github.com/Pacchu9832/Edutrack-admin/services/edutrack"
)

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	original := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = original })
}

func adminBackend() http.Handler {
	writeJSON := func(w http.ResponseWriter, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds school.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, edusvc.LoginResult{
			User:  school.User{ID: 1, Name: "Admin", Email: "admin@school.in", Role: school.RoleAdmin},
			Token: "tok123",
		})
	})
	mux.HandleFunc("/marks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []school.Mark{
			{StudentID: 11, StudentName: "Aarav Shah", RollNumber: "1", Class: "10",
				Subject: "Mathematics", Exam: school.ExamMidterm, TotalMark: 92, Status: "Pass"},
		})
	})
	mux.HandleFunc("/public-admin/students/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []school.Student{{ID: 11, Name: "Aarav Shah", RollNumber: "1", Class: "10"}})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func newTestCLI(t *testing.T) *commandLine {
	t.Helper()

	ts := httptest.NewServer(adminBackend())
	t.Cleanup(ts.Close)

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	api := edusvc.NewClient(
		ts.URL,
		edusvc.WithTokenSource(func() string { return store.Restore().Token }),
		edusvc.WithOnUnauthorized(func() { _ = store.Clear() }),
	)
	return &commandLine{conf: &core.Config{}, api: api, store: store}
}

func TestCLIUsage(t *testing.T) {
	cli := newTestCLI(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", []string{"admin"}},
		{"unknown command", []string{"admin", "frobnicate"}},
		{"login without username", []string{"admin", "login"}},
		{"export without type", []string{"admin", "export"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, errHelp, cli.run(tt.args))
		})
	}
}

func TestCLILogin(t *testing.T) {
	t.Run("success persists the session", func(t *testing.T) {
		cli := newTestCLI(t)
		mockPassword(t, "secret")

		require.NoError(t, cli.run([]string{"admin", "login", "-username", "admin"}))

		sess := cli.store.Restore()
		require.True(t, sess.Valid())
		assert.Equal(t, "Admin", sess.User.Name)
		assert.Equal(t, "tok123", sess.Token)
	})

	t.Run("empty password asks for help", func(t *testing.T) {
		cli := newTestCLI(t)
		mockPassword(t, "")

		assert.Equal(t, errHelp, cli.run([]string{"admin", "login", "-username", "admin"}))
		assert.False(t, cli.store.Restore().Valid())
	})

	t.Run("rejected credentials leave no session", func(t *testing.T) {
		cli := newTestCLI(t)
		mockPassword(t, "wrong")

		assert.Error(t, cli.run([]string{"admin", "login", "-username", "admin"}))
		assert.False(t, cli.store.Restore().Valid())
	})
}

func TestCLILogout(t *testing.T) {
	cli := newTestCLI(t)
	mockPassword(t, "secret")
	require.NoError(t, cli.run([]string{"admin", "login", "-username", "admin"}))

	require.NoError(t, cli.run([]string{"admin", "logout"}))
	assert.False(t, cli.store.Restore().Valid())

	// logging out twice is harmless
	require.NoError(t, cli.run([]string{"admin", "logout"}))
}

func TestCLIWhoami(t *testing.T) {
	cli := newTestCLI(t)

	// never errors, logged in or not
	require.NoError(t, cli.run([]string{"admin", "whoami"}))

	mockPassword(t, "secret")
	require.NoError(t, cli.run([]string{"admin", "login", "-username", "admin"}))
	require.NoError(t, cli.run([]string{"admin", "whoami"}))
}

func TestCLIExport(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		cli := newTestCLI(t)
		err := cli.run([]string{"admin", "export", "-type", "marks", "-class", "10", "-subject", "Mathematics", "-exam", school.ExamMidterm})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not logged in")
	})

	loggedIn := func(t *testing.T) *commandLine {
		cli := newTestCLI(t)
		mockPassword(t, "secret")
		require.NoError(t, cli.run([]string{"admin", "login", "-username", "admin"}))
		return cli
	}

	t.Run("unknown type", func(t *testing.T) {
		cli := loggedIn(t)
		err := cli.run([]string{"admin", "export", "-type", "gossip"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown report type")
	})

	t.Run("marks scope is mandatory", func(t *testing.T) {
		cli := loggedIn(t)
		err := cli.run([]string{"admin", "export", "-type", "marks", "-class", "10"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "-subject")
	})

	t.Run("bad attendance dates", func(t *testing.T) {
		cli := loggedIn(t)
		err := cli.run([]string{"admin", "export", "-type", "attendance", "-class", "10", "-start", "June 1st"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})

	t.Run("writes a marks csv", func(t *testing.T) {
		cli := loggedIn(t)
		out := filepath.Join(t.TempDir(), "marks.csv")

		require.NoError(t, cli.run([]string{
			"admin", "export", "-type", "marks",
			"-class", "10", "-subject", "Mathematics", "-exam", school.ExamMidterm,
			"-out", out,
		}))

		raw, err := os.ReadFile(out)
		require.NoError(t, err)
		content := string(raw)
		assert.Contains(t, content, "Marks Report")
		assert.Contains(t, content, "Aarav Shah")
		assert.Contains(t, content, "A+")
	})

	t.Run("writes json", func(t *testing.T) {
		cli := loggedIn(t)
		out := filepath.Join(t.TempDir(), "marks.json")

		require.NoError(t, cli.run([]string{
			"admin", "export", "-type", "marks",
			"-class", "10", "-subject", "Mathematics", "-exam", school.ExamMidterm,
			"-format", "json", "-out", out,
		}))

		raw, err := os.ReadFile(out)
		require.NoError(t, err)
		var rep struct {
			Kind string     `json:"kind"`
			Rows [][]string `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(raw, &rep))
		assert.Equal(t, "marks", rep.Kind)
		require.Len(t, rep.Rows, 1)
	})
}
