package cases_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aiharmwatch/harmwatch/internal/cases"
	"github.com/aiharmwatch/harmwatch/internal/cases/memory"
	"github.com/aiharmwatch/harmwatch/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type caseEnvelope struct {
	Success bool        `json:"success"`
	Data    domain.Case `json:"data"`
}

type listEnvelope struct {
	Success    bool             `json:"success"`
	Data       []domain.Case    `json:"data"`
	Pagination cases.Pagination `json:"pagination"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := memory.NewRepository(cases.InitialCases(time.Now()))
	service := cases.NewService(repo, cases.Config{
		Stats: cases.StatsConfig{
			TotalUsers:           128,
			TotalEvidence:        56,
			CategoryDistribution: map[string]int{"bias": 1, "privacy": 1},
		},
	})

	r := chi.NewRouter()
	r.Route("/api", cases.NewHandler(service).RegisterRoutes)
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandler_ListCases(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantIDs        []string
		wantPage       int
		wantTotalPages int
	}{
		{"defaults", "", []string{"1", "2"}, 1, 1},
		{"explicit page and limit", "?page=2&limit=1", []string{"2"}, 2, 2},
		{"page out of range", "?page=5", []string{}, 5, 1},
		{"non-numeric values fall back", "?page=abc&limit=xyz", []string{"1", "2"}, 1, 1},
		{"zero values fall back", "?page=0&limit=0", []string{"1", "2"}, 1, 1},
		{"negative values fall back", "?page=-2&limit=-1", []string{"1", "2"}, 1, 1},
		{"offset beyond int range", "?page=4611686018427387905&limit=4", []string{}, 4611686018427387905, 1},
		{"huge page and limit", "?page=4611686018427387904&limit=9223372036854775806", []string{}, 4611686018427387904, 1},
		{"max limit", "?limit=9223372036854775807", []string{"1", "2"}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			rec := serve(t, router, http.MethodGet, "/api/cases"+tt.query, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decode[listEnvelope](t, rec)
			assert.True(t, body.Success)
			require.NotNil(t, body.Data)

			ids := make([]string, 0, len(body.Data))
			for _, c := range body.Data {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPage, body.Pagination.Page)
			assert.Equal(t, tt.wantTotalPages, body.Pagination.TotalPages)
			assert.Equal(t, 2, body.Pagination.TotalItems)
		})
	}
}

func TestHandler_ListCases_EmptyPageIsArray(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/cases?page=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestHandler_GetCase(t *testing.T) {
	router := newTestRouter(t)

	first := decode[caseEnvelope](t, serve(t, router, http.MethodGet, "/api/cases/2", ""))
	second := decode[caseEnvelope](t, serve(t, router, http.MethodGet, "/api/cases/2", ""))

	assert.True(t, first.Success)
	assert.Equal(t, "2", first.Data.ID)
	assert.Equal(t, 99, first.Data.Views)
	assert.Equal(t, 100, second.Data.Views)
	assert.Equal(t, "Facial recognition privacy violation", second.Data.Title)
}

func TestHandler_GetCase_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/cases/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errorEnvelope{Error: "Case not found"}, decode[errorEnvelope](t, rec))
}

func TestHandler_CreateCase(t *testing.T) {
	// Arrange
	router := newTestRouter(t)

	// Act
	rec := serve(t, router, http.MethodPost, "/api/cases",
		`{"title":"X","category":"bias","description":"d"}`)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[caseEnvelope](t, rec)
	assert.True(t, created.Success)
	assert.Equal(t, "3", created.Data.ID)
	assert.Equal(t, "X", created.Data.Title)
	assert.Equal(t, domain.SeverityLow, created.Data.Severity)
	assert.Equal(t, domain.CaseStatusOpen, created.Data.Status)
	assert.Zero(t, created.Data.Views)
	assert.Zero(t, created.Data.Upvotes)
	assert.WithinDuration(t, time.Now(), created.Data.CreatedAt, time.Minute)

	list := decode[listEnvelope](t, serve(t, router, http.MethodGet, "/api/cases", ""))
	require.Len(t, list.Data, 3)
	assert.Equal(t, "3", list.Data[0].ID)
	assert.Equal(t, 3, list.Pagination.TotalItems)

	stats := decode[struct {
		Data domain.Stats `json:"data"`
	}](t, serve(t, router, http.MethodGet, "/api/stats", ""))
	assert.Equal(t, 3, stats.Data.TotalCases)
}

func TestHandler_CreateCase_EmptyBody(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/cases", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[caseEnvelope](t, rec)
	assert.Equal(t, "3", created.Data.ID)
	assert.Empty(t, created.Data.Title)
	assert.Equal(t, domain.SeverityLow, created.Data.Severity)
}

func TestHandler_CreateCase_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/cases", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errorEnvelope{Error: "invalid json"}, decode[errorEnvelope](t, rec))

	list := decode[listEnvelope](t, serve(t, router, http.MethodGet, "/api/cases", ""))
	assert.Equal(t, 2, list.Pagination.TotalItems)
}

func TestHandler_GetStats(t *testing.T) {
	router := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/api/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"data": {
			"totalCases": 2,
			"totalUsers": 128,
			"totalEvidence": 56,
			"categoryDistribution": {"bias": 1, "privacy": 1}
		}
	}`, rec.Body.String())
}
