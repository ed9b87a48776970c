package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"summarize/pipeline"
	"summarize/types"

	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 100
	maxRecentLimit     = 1000
)

// SummaryService is the slice of the pipeline the HTTP layer depends on.
type SummaryService interface {
	Summarize(ctx context.Context, ref types.ArticleReference) (pipeline.Result, error)
	Lookup(ctx context.Context, fingerprint string) (*types.SummaryArtifact, error)
	Recent(ctx context.Context, limit int) ([]types.RecencyEntry, error)
}

// SummaryController serves the summary endpoints.
type SummaryController struct {
	service SummaryService
}

func NewSummaryController(service SummaryService) *SummaryController {
	return &SummaryController{service: service}
}

// RegisterSummaryRoutes registers summary endpoints.
func RegisterSummaryRoutes(r *gin.Engine, ctrl *SummaryController) {
	r.POST("/summarize", ctrl.Submit)
	r.GET("/summarize/*url", ctrl.SummarizeURL)
	r.GET("/summary/:fingerprint", ctrl.GetSummary)
	r.GET("/raw/:fingerprint", ctrl.GetRaw)
	r.GET("/recent", ctrl.GetRecent)
}

// SummaryResponse is the wire form of a summary returned by the pipeline.
type SummaryResponse struct {
	Fingerprint string    `json:"fingerprint"`
	Title       string    `json:"title"`
	URL         string    `json:"url,omitempty"`
	Summary     string    `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
	CacheHit    bool      `json:"cache_hit"`
}

func toSummaryResponse(result pipeline.Result) SummaryResponse {
	a := result.Artifact
	return SummaryResponse{
		Fingerprint: a.Fingerprint,
		Title:       a.Title,
		URL:         a.URL,
		Summary:     a.Summary,
		CreatedAt:   a.CreatedAt,
		CacheHit:    result.CacheHit,
	}
}

// Submit summarizes content posted as form fields. Callers supply either a
// body (field "body", or "content" for older clients) or a url.
// POST /summarize
func (ctrl *SummaryController) Submit(c *gin.Context) {
	ref := types.ArticleReference{
		Title: c.PostForm("title"),
		URL:   c.PostForm("url"),
		Body:  c.PostForm("body"),
	}
	if ref.Body == "" {
		ref.Body = c.PostForm("content")
	}
	if ref.Body == "" && ref.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either body or url is required"})
		return
	}

	result, err := ctrl.service.Summarize(c.Request.Context(), ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSummaryResponse(result))
}

// SummarizeURL summarizes the article at the URL carried in the path, so a
// summary can be requested by prepending the service host to an article URL.
// GET /summarize/*url
func (ctrl *SummaryController) SummarizeURL(c *gin.Context) {
	target := strings.TrimPrefix(c.Param("url"), "/")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	result, err := ctrl.service.Summarize(c.Request.Context(), types.ArticleReference{URL: target})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSummaryResponse(result))
}

// GetSummary returns a stored artifact without generating anything.
// GET /summary/:fingerprint
func (ctrl *SummaryController) GetSummary(c *gin.Context) {
	artifact, err := ctrl.service.Lookup(c.Request.Context(), c.Param("fingerprint"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// GetRaw returns a stored summary as plain text for debugging.
// GET /raw/:fingerprint
func (ctrl *SummaryController) GetRaw(c *gin.Context) {
	artifact, err := ctrl.service.Lookup(c.Request.Context(), c.Param("fingerprint"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, "Title: %s\n\nSummary:\n%s", artifact.Title, artifact.Summary)
}

// GetRecent lists the most recently generated summaries, newest first.
// GET /recent?limit=N
func (ctrl *SummaryController) GetRecent(c *gin.Context) {
	limit := getQueryInt("limit", defaultRecentLimit, c)
	if limit < 1 {
		limit = 1
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	entries, err := ctrl.service.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []types.RecencyEntry{}
	}
	c.JSON(http.StatusOK, gin.H{
		"summaries": entries,
		"limit":     limit,
	})
}

// respondError translates pipeline errors into HTTP responses.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrContentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, types.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, types.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, types.ErrExtractionFailed),
		errors.Is(err, types.ErrUpstreamError),
		errors.Is(err, types.ErrIndexUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)
	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}
	return parsed
}
