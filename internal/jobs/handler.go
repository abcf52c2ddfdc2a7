package jobs

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajan170/ai-resume-analyzer/internal/candidates"
	"github.com/rajan170/ai-resume-analyzer/internal/matcher"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server/middleware"
	"github.com/rajan170/ai-resume-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job and matching routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
	rg.DELETE("/jobs/:id", h.remove)
	rg.POST("/candidates/:id/match", h.match)
}

type jobResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Department     string   `json:"department,omitempty"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	CreatedAt      string   `json:"created_at"`
}

func toResponse(job Job) jobResponse {
	return jobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Department:     job.Department,
		Description:    job.Description,
		RequiredSkills: job.RequiredSkills,
		CreatedAt:      job.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type createJobRequest struct {
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), userID, req.Title, req.Department, req.Description, req.RequiredSkills)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title and description are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		}
		return
	}

	respond.Created(c, toResponse(job))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	out := make([]jobResponse, 0, len(items))
	for _, job := range items {
		out = append(out, toResponse(job))
	}
	respond.OK(c, gin.H{"jobs": out})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete job", nil)
		}
		return
	}
	respond.OK(c, gin.H{"status": "deleted"})
}

type matchRequest struct {
	Jobs []matcher.JobPosting `json:"jobs"`
}

func (h *Handler) match(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req matchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	results, err := h.Svc.Match(c.Request.Context(), userID, c.Param("id"), req.Jobs)
	if err != nil {
		switch {
		case errors.Is(err, candidates.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to match candidate", nil)
		}
		return
	}

	respond.OK(c, gin.H{"matches": results})
}
