package cases

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aiharmwatch/harmwatch/internal/pkg/ctxlog"
	"github.com/aiharmwatch/harmwatch/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the case registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new cases handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers case and stats routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.GetStats)

	r.Route("/cases", func(r chi.Router) {
		r.Get("/", h.ListCases)
		r.Post("/", h.CreateCase)
		r.Get("/{id}", h.GetCase)
	})
}

// CreateCaseRequest represents the request body for creating a case.
// Fields are taken as-is; only severity has a default.
type CreateCaseRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrCaseNotFound, Status: http.StatusNotFound, Message: "Case not found"},
}

// ListCases handles GET /cases request.
func (h *Handler) ListCases(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	items, pagination, err := h.service.ListCases(r.Context(), page, limit)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Paginated(w, http.StatusOK, items, pagination)
}

// GetCase handles GET /cases/{id} request.
func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := ctxlog.With(r.Context(), "case_id", id)

	c, err := h.service.GetCase(ctx, id)
	if err != nil {
		httputil.HandleError(ctx, w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, c)
}

// CreateCase handles POST /cases request.
func (h *Handler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	c, err := h.service.CreateCase(r.Context(), CreateCaseInput(req))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, c)
}

// GetStats handles GET /stats request.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		httputil.HandleError(r.Context(), w, err, errorMappings)
		return
	}

	httputil.Success(w, http.StatusOK, stats)
}

// queryInt parses a positive integer query parameter.
// Missing or malformed values yield 0 so the service applies its default.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 1 {
		return 0
	}
	return v
}
