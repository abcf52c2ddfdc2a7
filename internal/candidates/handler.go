package candidates

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajan170/ai-resume-analyzer/internal/extract"
	"github.com/rajan170/ai-resume-analyzer/internal/llm"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server/middleware"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches candidate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates", h.upload)
	rg.POST("/candidates/text", h.ingestText)
	rg.GET("/candidates", h.list)
	rg.GET("/candidates/:id", h.get)
	rg.PATCH("/candidates/:id", h.rename)
	rg.DELETE("/candidates/:id", h.remove)
	rg.GET("/candidates/:id/critique", h.critique)
}

type candidateResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	JobTitle      string   `json:"job_title"`
	Skills        []string `json:"skills"`
	ATSScore      int      `json:"ats_score"`
	Feedback      []string `json:"feedback"`
	FoundSections []string `json:"found_sections"`
	FileName      string   `json:"file_name,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

func toResponse(candidate Candidate) candidateResponse {
	return candidateResponse{
		ID:            candidate.ID,
		Name:          candidate.Name,
		Email:         candidate.Email,
		Phone:         candidate.Phone,
		JobTitle:      candidate.JobTitle,
		Skills:        candidate.Skills,
		ATSScore:      candidate.ATSScore,
		Feedback:      candidate.Feedback,
		FoundSections: candidate.FoundSections,
		FileName:      candidate.FileName,
		CreatedAt:     candidate.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	candidate, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err, "failed to upload resume")
		return
	}

	respond.Created(c, toResponse(candidate))
}

type ingestTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) ingestText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ingestTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	candidate, err := h.Svc.IngestText(c.Request.Context(), userID, req.Text)
	if err != nil {
		h.writeError(c, err, "failed to ingest resume text")
		return
	}

	respond.Created(c, toResponse(candidate))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list candidates", nil)
		return
	}

	out := make([]candidateResponse, 0, len(items))
	for _, candidate := range items {
		out = append(out, toResponse(candidate))
	}
	respond.OK(c, gin.H{"candidates": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	candidate, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to fetch candidate")
		return
	}
	respond.OK(c, toResponse(candidate))
}

type renameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) rename(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.Rename(c.Request.Context(), userID, c.Param("id"), req.Name); err != nil {
		h.writeError(c, err, "failed to rename candidate")
		return
	}
	respond.OK(c, gin.H{"status": "updated"})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete candidate")
		return
	}
	respond.OK(c, gin.H{"status": "deleted"})
}

func (h *Handler) critique(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	critique, err := h.Svc.Critique(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "critique backend is not configured", nil)
		default:
			h.writeError(c, err, "failed to generate critique")
		}
		return
	}
	respond.OK(c, gin.H{"critique": critique})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupported):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_file_type", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
