package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/extract"
	"causematch-backend/internal/shared/server/respond"
	"causematch-backend/internal/shared/storage/object"
	"causematch-backend/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler accepts proposal uploads: extract text, stash the original in
// object storage, return both to the client. Nothing is persisted to the
// database here; the client decides what to save.
type Handler struct {
	Store object.Store
}

// NewHandler constructs a Handler.
func NewHandler(store object.Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches the upload route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
}

type uploadResponse struct {
	Success           bool   `json:"success"`
	FileName          string `json:"fileName"`
	FileType          string `json:"fileType"`
	ExtractedText     string `json:"extractedText"`
	StorageKey        string `json:"storageKey,omitempty"`
	StorageURL        string `json:"storageUrl,omitempty"`
	StorageError      string `json:"storageError,omitempty"`
	StorageConfigured bool   `json:"storageConfigured"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadSize {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file exceeds the 10MB limit", nil)
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if _, ok := extract.AllowedExtensions[ext]; !ok {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation,
			fmt.Sprintf("unsupported file type %q: upload a PDF, DOCX or TXT file", ext), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unable to read file", nil)
		return
	}

	text, err := extract.FromBytes(data, ext)
	if err != nil {
		// Whitespace-only content is the caller's problem; a decoder
		// failure on an accepted file type is ours.
		if errors.Is(err, extract.ErrEmptyContent) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal,
			fmt.Sprintf("failed to extract text: %v", err), nil)
		return
	}

	resp := uploadResponse{
		Success:           true,
		FileName:          fileHeader.Filename,
		FileType:          ext,
		ExtractedText:     text,
		StorageConfigured: h.Store.Configured(),
	}

	// Storage failure never sinks the upload: the client still gets the
	// extracted text and a storageError to surface.
	if resp.StorageConfigured {
		contentType := fileHeader.Header.Get("Content-Type")
		key, url, err := h.Store.Upload(c.Request.Context(), fileHeader.Filename, contentType, bytes.NewReader(data))
		if err != nil {
			telemetry.Error("upload.store_failed", map[string]any{
				"file_name": fileHeader.Filename,
				"error":     err.Error(),
			})
			resp.StorageError = "failed to store the original file"
		} else {
			resp.StorageKey = key
			resp.StorageURL = url
		}
	}

	respond.OK(c, resp)
}
