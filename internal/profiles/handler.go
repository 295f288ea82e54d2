package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/llm"
	"causematch-backend/internal/shared/server/middleware"
	"causematch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.POST("/profile", h.create)
	rg.PUT("/profile", h.save)
	rg.DELETE("/profile", h.remove)
	rg.PUT("/profile/file", h.updateFileReference)
	rg.POST("/profile/extract", h.extract)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		// A user who never saved gets null, not an error.
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load profile", nil)
		return
	}

	respond.OK(c, profile)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid profile fields", nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusConflict, respond.CodeConflict, "profile already exists", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to create profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, profile)
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Save(c.Request.Context(), userID, in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid profile fields", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to save profile", nil)
		return
	}

	respond.OK(c, profile)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to delete profile", nil)
		return
	}

	respond.OK(c, gin.H{"success": true})
}

type fileReferenceRequest struct {
	FileName   string `json:"fileName"`
	StorageKey string `json:"storageKey"`
	StorageURL string `json:"storageUrl"`
}

func (h *Handler) updateFileReference(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req fileReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	profile, err := h.Svc.UpdateFileReference(c.Request.Context(), userID, req.FileName, req.StorageKey, req.StorageURL)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "fileName, storageKey and storageUrl are required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to update file reference", nil)
		return
	}

	respond.OK(c, profile)
}

type extractRequest struct {
	ExtractedText string `json:"extractedText"`
}

func (h *Handler) extract(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	fields, draft, err := h.Svc.ExtractDraft(c.Request.Context(), userID, req.ExtractedText)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "extractedText is required", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusBadGateway, respond.CodeUpstream, "extraction model is not configured", nil)
		default:
			respond.Error(c, http.StatusBadGateway, respond.CodeUpstream, "extraction failed", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"success":       true,
		"extractedData": fields,
		"profileDraft":  draft,
	})
}
