package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"aeroxfer/internal/config"
	"aeroxfer/internal/domain"
	"aeroxfer/internal/scan"
	"aeroxfer/internal/service"
)

// ProcessRequest is the JSON options field of a multipart process request.
type ProcessRequest struct {
	Project   *domain.Project               `json:"project"`
	Mappings  map[string]domain.MappingSpec `json:"mappings,omitempty"`
	Selection map[string][]int              `json:"selection,omitempty"`
	Overwrite bool                          `json:"overwrite,omitempty"`
}

// ProcessHandler exposes the block pipeline over HTTP.
type ProcessHandler struct {
	files *service.FileService
	cfg   *config.Config
}

// NewProcessHandler creates a new ProcessHandler.
func NewProcessHandler(files *service.FileService, cfg *config.Config) *ProcessHandler {
	return &ProcessHandler{files: files, cfg: cfg}
}

// Process handles POST /api/v1/process: a multipart upload with a "file"
// part and an "options" part holding the ProcessRequest JSON. Output files
// are written into the configured output directory; the response is the
// per-block report.
func (h *ProcessHandler) Process(c *gin.Context) {
	req, ok := h.parseOptions(c)
	if !ok {
		return
	}

	path, cleanup, ok := h.saveUpload(c)
	if !ok {
		return
	}
	defer cleanup()

	looksLike, err := scan.LooksLikeBlockFile(path, h.cfg.Detect.SniffLines)
	if err != nil {
		HandleError(c, err)
		return
	}
	if !looksLike {
		HandleError(c, domain.ErrNotBlockFile)
		return
	}

	opts := &service.Options{
		Project:         req.Project,
		Mappings:        req.Mappings,
		Selection:       req.Selection,
		OutputDir:       h.cfg.Output.Dir,
		TimestampFormat: h.cfg.Output.TimestampFormat,
		Overwrite:       req.Overwrite || h.cfg.Output.Overwrite,
	}
	report, err := h.files.ProcessFile(c.Request.Context(), path, opts)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"report":  report,
		"summary": report.Summary(),
	})
}

// Labels handles POST /api/v1/labels: same multipart upload, returning only
// the extracted block labels.
func (h *ProcessHandler) Labels(c *gin.Context) {
	path, cleanup, ok := h.saveUpload(c)
	if !ok {
		return
	}
	defer cleanup()

	labels, err := h.files.ListLabels(path)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"labels": labels})
}

// parseOptions decodes the "options" multipart field. A missing field means
// default options with an empty project.
func (h *ProcessHandler) parseOptions(c *gin.Context) (*ProcessRequest, bool) {
	req := &ProcessRequest{}
	raw := c.PostForm("options")
	if raw == "" {
		return req, true
	}
	if err := json.Unmarshal([]byte(raw), req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_OPTIONS", "options field is not valid JSON")
		return nil, false
	}
	return req, true
}

// saveUpload stores the "file" part in a temp directory and returns its
// path plus a cleanup func.
func (h *ProcessHandler) saveUpload(c *gin.Context) (string, func(), bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return "", nil, false
	}

	dir, err := os.MkdirTemp("", "aeroxfer-upload-*")
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "could not store upload")
		return "", nil, false
	}
	path := filepath.Join(dir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		_ = os.RemoveAll(dir)
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "could not store upload")
		return "", nil, false
	}
	return path, func() { _ = os.RemoveAll(dir) }, true
}
