package edusvc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

func TestClientRequestHeaders(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	api := NewClient(ts.URL, WithTokenSource(func() string { return "tok123" }))
	_, err := api.Classes(context.Background())
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/public-admin/classes", got.URL.Path)
	assert.Equal(t, "Bearer tok123", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
}

func TestClientOmitsEmptyBearer(t *testing.T) {
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	api := NewClient(ts.URL, WithTokenSource(func() string { return "" }))
	_, err := api.Classes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestClientUnauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	var kickedOut bool
	api := NewClient(ts.URL, WithOnUnauthorized(func() { kickedOut = true }))

	_, err := api.Stats(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, kickedOut, "on-unauthorized handler was not invoked")
}

func TestClientAPIErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		badRequest bool
		notFound   bool
	}{
		{"message envelope", http.StatusBadRequest, `{"message":"roll number taken"}`, "roll number taken", true, false},
		{"error envelope", http.StatusNotFound, `{"error":"no such student"}`, "no such student", false, true},
		{"no body", http.StatusInternalServerError, ``, "Internal Server Error", false, false},
		{"non-json body", http.StatusBadGateway, `<html>boom</html>`, "Bad Gateway", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			api := NewClient(ts.URL)
			_, err := api.Stats(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, tt.badRequest, IsBadRequest(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestClientLogin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds school.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.UsernameOrEmail != "admin" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(LoginResult{
			User:  school.User{ID: 1, Name: "Admin", Role: school.RoleAdmin},
			Token: "tok123",
		})
	}))
	defer ts.Close()

	api := NewClient(ts.URL)

	result, err := api.Login(context.Background(), school.Credentials{UsernameOrEmail: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok123", result.Token)
	assert.Equal(t, 1, result.User.ID)

	_, err = api.Login(context.Background(), school.Credentials{UsernameOrEmail: "admin", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientMultipartForm(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Aarav Shah", r.FormValue("name"))
		assert.Equal(t, "10", r.FormValue("class"))

		file, header, err := r.FormFile("profileImage")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "avatar.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), content)
	}))
	defer ts.Close()

	api := NewClient(ts.URL)
	form := school.StudentForm{Name: "Aarav Shah", RollNumber: "12", Class: "10", Password: "secret1"}
	avatar := &Upload{Field: "profileImage", Filename: "avatar.png", ContentType: "image/png", Content: []byte("png-bytes")}
	require.NoError(t, api.CreateStudent(context.Background(), form, avatar))
}

func TestClientMultipartWithoutUpload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Aarav Shah", r.FormValue("name"))
		_, _, err := r.FormFile("profileImage")
		assert.Error(t, err)
	}))
	defer ts.Close()

	api := NewClient(ts.URL)
	form := school.StudentForm{Name: "Aarav Shah", RollNumber: "12", Class: "10"}
	require.NoError(t, api.UpdateStudent(context.Background(), 5, form, nil))
}

func TestLeaveRequestsEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/leave-requests", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("class"))
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("start_date"))
		_, _ = w.Write([]byte(`{"data":[{"id":1,"student_name":"Aarav Shah"}]}`))
	}))
	defer ts.Close()

	api := NewClient(ts.URL)
	leaves, err := api.LeaveRequestsFiltered(context.Background(), "10", "2024-06-01", "")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, "Aarav Shah", leaves[0].StudentName)
}

func TestDecideLeave(t *testing.T) {
	var gotPath string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		require.Equal(t, http.MethodPatch, r.Method)
	}))
	defer ts.Close()

	api := NewClient(ts.URL)
	require.NoError(t, api.DecideLeave(context.Background(), 4, ActorTeacher, school.DecisionApproved))
	assert.Equal(t, "/leave-requests/4/teacher", gotPath)
	assert.JSONEq(t, `{"status":"approved"}`, string(gotBody))

	assert.Error(t, api.DecideLeave(context.Background(), 4, "principal", school.DecisionApproved))
}

func TestDemoModeFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	t.Run("disabled surfaces the error", func(t *testing.T) {
		api := NewClient(ts.URL)
		_, err := api.Notices(context.Background())
		assert.Error(t, err)
	})

	t.Run("enabled serves samples", func(t *testing.T) {
		api := NewClient(ts.URL, WithDemoMode(true))

		notices, err := api.Notices(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, notices)

		leaves, err := api.LeaveRequests(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, leaves)
	})

	t.Run("never masks a 401", func(t *testing.T) {
		ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts401.Close()

		api := NewClient(ts401.URL, WithDemoMode(true))
		_, err := api.Notices(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestTeacherDetailsFlattensEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teacher/details/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"subject":"Hindi","phone":"999","details":{"qualification":"MA","phone":"111"}}`))
	}))
	defer ts.Close()

	api := NewClient(ts.URL)
	details, err := api.TeacherDetails(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, details.UserID)
	assert.Equal(t, "MA", details.Qualification)
	// nested phone wins, subject falls back to the top-level value
	assert.Equal(t, "111", details.Phone)
	assert.Equal(t, "Hindi", details.Subject)
}

func TestEnrichTeachers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teacher/details/1":
			_ = json.NewEncoder(w).Encode(school.TeacherDetails{UserID: 1, Subject: "Science", Phone: "111"})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	defer ts.Close()

	api := NewClient(ts.URL)
	users := []school.User{
		{ID: 1, Name: "Meera Iyer", Role: school.RoleTeacher},
		{ID: 2, Name: "Rohan Das", Role: school.RoleTeacher}, // details missing
		{ID: 3, Name: "Admin", Role: school.RoleAdmin},
	}

	enriched := api.EnrichTeachers(context.Background(), users)

	require.Len(t, enriched, 3)
	assert.Equal(t, "Science", enriched[0].Subject)
	assert.Equal(t, "111", enriched[0].Phone)
	assert.Empty(t, enriched[1].Subject, "a failed lookup must not fail the listing")
	assert.Empty(t, enriched[2].Subject, "non-teachers are left alone")

	// the input slice is not mutated
	assert.Empty(t, users[0].Subject)
}
