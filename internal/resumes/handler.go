package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/llm"
	"causematch-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
	rg.GET("/resumes", h.list)
	rg.POST("/resumes", h.create)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.remove)
}

type extractRequest struct {
	ExtractedText string `json:"extractedText"`
}

func (h *Handler) extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	fields, err := h.Svc.Extract(c.Request.Context(), req.ExtractedText)
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

	respond.OK(c, gin.H{"success": true, "extractedData": fields})
}

func (h *Handler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	listed, total, err := h.Svc.List(c.Request.Context(), page, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to list resumes", nil)
		return
	}

	respond.OK(c, gin.H{
		"resumes": listed,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *Handler) create(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "fileName and fileType are required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to save resume", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, resume)
}

func (h *Handler) get(c *gin.Context) {
	resume, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to load resume", nil)
		return
	}

	respond.OK(c, resume)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to delete resume", nil)
		return
	}

	respond.OK(c, gin.H{"success": true})
}
