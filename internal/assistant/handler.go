package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/msaleh/fairsplit/internal/group"
	"github.com/msaleh/fairsplit/internal/settle"
	"github.com/msaleh/fairsplit/pkg/middleware"
	"github.com/msaleh/fairsplit/pkg/response"
)

// Handler handles HTTP requests for assistant operations
type Handler struct {
	service *Service
	members *group.Repository
}

// NewHandler creates a new assistant handler
func NewHandler(service *Service, members *group.Repository) *Handler {
	return &Handler{service: service, members: members}
}

// Routes returns the router for assistant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/summary", h.Summary)

	return r
}

// Summary handles POST /assistant/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.GroupID == 0 {
		response.BadRequest(w, "group_id is required")
		return
	}

	cache := group.NewMembershipCache(h.members)
	isMember, err := cache.IsMember(r.Context(), req.GroupID, userID)
	if err != nil {
		response.InternalError(w, "Failed to check group membership")
		return
	}
	if !isMember {
		response.Forbidden(w, "You are not a member of this group")
		return
	}

	summary, err := h.service.Summarize(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settle.ErrEmptyGroup) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to generate summary")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
