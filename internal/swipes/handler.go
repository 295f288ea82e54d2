package swipes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/shared/server/middleware"
	"causematch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the swipe service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches swipe routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/swipe/profiles", h.browse)
	rg.POST("/swipe/action", h.record)
}

func (h *Handler) browse(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	candidates, err := h.Svc.Browse(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load profiles", nil)
		return
	}

	respond.OK(c, gin.H{"profiles": candidates})
}

type recordRequest struct {
	ProfileID string `json:"profileId"`
	Action    string `json:"action"`
}

func (h *Handler) record(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}
	if req.ProfileID == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "profileId is required", nil)
		return
	}

	swipe, err := h.Svc.Record(c.Request.Context(), userID, req.ProfileID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
		case errors.Is(err, ErrProfileNotFound):
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, err.Error(), nil)
		case errors.Is(err, ErrSelfDecision):
			respond.Error(c, http.StatusConflict, respond.CodeConflict, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to record swipe", nil)
		}
		return
	}

	respond.OK(c, gin.H{"success": true, "swipe": swipe})
}
