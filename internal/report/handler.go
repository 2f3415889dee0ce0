package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/msaleh/fairsplit/internal/expense"
	"github.com/msaleh/fairsplit/internal/group"
	"github.com/msaleh/fairsplit/pkg/middleware"
	"github.com/msaleh/fairsplit/pkg/response"
)

// Handler handles HTTP requests for report operations
type Handler struct {
	service *Service
	members *group.Repository
}

// NewHandler creates a new report handler
func NewHandler(service *Service, members *group.Repository) *Handler {
	return &Handler{service: service, members: members}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{groupId}/settlement", h.Settlement)
	r.Get("/group/{groupId}/spending", h.Spending)

	return r
}

// Settlement handles GET /reports/group/{groupId}/settlement
func (h *Handler) Settlement(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	from, to, err := parseWindow(r)
	if err != nil {
		response.BadRequest(w, "Invalid date, use RFC3339 or YYYY-MM-DD")
		return
	}

	report, err := h.service.Settlement(r.Context(), groupID, from, to)
	if err != nil {
		response.InternalError(w, "Failed to compute settlement")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// Spending handles GET /reports/group/{groupId}/spending
func (h *Handler) Spending(w http.ResponseWriter, r *http.Request) {
	groupID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	from, to, err := parseWindow(r)
	if err != nil {
		response.BadRequest(w, "Invalid date, use RFC3339 or YYYY-MM-DD")
		return
	}

	f := expense.Filter{
		From:     from,
		To:       to,
		Category: r.URL.Query().Get("category"),
	}

	report, err := h.service.Spending(r.Context(), groupID, f)
	if err != nil {
		response.InternalError(w, "Failed to compute spending report")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// authorize resolves the group ID and checks the caller is a joined member.
// It writes the error response itself when the check fails.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (int64, bool) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return 0, false
	}

	userID, authed := middleware.GetUserID(r.Context())
	if !authed {
		response.Unauthorized(w, "Authentication required")
		return 0, false
	}

	cache := group.NewMembershipCache(h.members)
	isMember, err := cache.IsMember(r.Context(), groupID, userID)
	if err != nil {
		response.InternalError(w, "Failed to check group membership")
		return 0, false
	}
	if !isMember {
		response.Forbidden(w, "You are not a member of this group")
		return 0, false
	}

	return groupID, true
}

func parseWindow(r *http.Request) (from, to *time.Time, err error) {
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := parseTime(v)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}

func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
