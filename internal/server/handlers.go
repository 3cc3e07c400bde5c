package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/nchavan/jobscout/internal/domain/models"
	"github.com/nchavan/jobscout/internal/services"
)

type matcher interface {
	Match(ctx context.Context, profile models.ResumeProfile, location string) []models.ScoredJob
}

type extractor interface {
	Extract(text string, expectedRole string) (models.ResumeProfile, error)
}

type Handler struct {
	extractor extractor
	matcher   matcher
}

func NewHandler(extractor extractor, matcher matcher) *Handler {
	return &Handler{extractor: extractor, matcher: matcher}
}

type parseResumeRequest struct {
	ResumeText   string `json:"resume_text" binding:"required"`
	ExpectedRole string `json:"expected_role"`
}

type matchRequest struct {
	ResumeText        string `json:"resume_text" binding:"required"`
	ExpectedRole      string `json:"expected_role" binding:"required"`
	PreferredLocation string `json:"preferred_location"`
}

type profileResponse struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	HasEducation    bool     `json:"hasEducation"`
	ExpectedRole    string   `json:"expectedRole"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
}

type scoredJobResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Description       string    `json:"description"`
	Salary            string    `json:"salary"`
	URL               string    `json:"url"`
	CreatedAt         time.Time `json:"created"`
	Source            string    `json:"source"`
	MatchScore        int       `json:"matchScore"`
	OverlappingSkills []string  `json:"overlappingSkills"`
	MissingSkills     []string  `json:"missingSkills"`
	Tips              []string  `json:"tips"`
	AIEnhanced        bool      `json:"aiEnhanced"`
}

type matchResponse struct {
	Profile profileResponse     `json:"profile"`
	Jobs    []scoredJobResponse `json:"jobs"`
	Message string              `json:"message,omitempty"`
}

// ParseResume handles POST /api/v1/resume: extraction only, no job search.
func (h *Handler) ParseResume(c *gin.Context) {

	var req parseResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	profile, err := h.extractor.Extract(req.ResumeText, req.ExpectedRole)
	if err != nil {
		h.renderExtractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Match handles POST /api/v1/match: the full extract-aggregate-rank pipeline.
// Zero matches is a valid outcome rendered with an explanatory message.
func (h *Handler) Match(c *gin.Context) {

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	profile, err := h.extractor.Extract(req.ResumeText, req.ExpectedRole)
	if err != nil {
		h.renderExtractionError(c, err)
		return
	}

	scored := h.matcher.Match(c.Request.Context(), profile, req.PreferredLocation)

	response := matchResponse{
		Profile: toProfileResponse(profile),
		Jobs:    make([]scoredJobResponse, 0, len(scored)),
	}
	for _, job := range scored {
		response.Jobs = append(response.Jobs, toScoredJobResponse(job))
	}

	if len(scored) == 0 {
		response.Message = "no matching postings found, try a broader role or location"
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) renderExtractionError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoTextContent) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process resume"})
}

func toProfileResponse(profile models.ResumeProfile) profileResponse {
	return profileResponse{
		Skills:          profile.Skills,
		ExperienceYears: profile.ExperienceYears,
		HasEducation:    profile.HasEducation,
		ExpectedRole:    profile.ExpectedRole,
		Email:           profile.Email,
		Phone:           profile.Phone,
	}
}

func toScoredJobResponse(job models.ScoredJob) scoredJobResponse {
	return scoredJobResponse{
		ID:                job.ID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Description:       job.Description,
		Salary:            job.Salary,
		URL:               job.URL,
		CreatedAt:         job.CreatedAt,
		Source:            job.Source,
		MatchScore:        job.MatchScore,
		OverlappingSkills: job.OverlappingSkills,
		MissingSkills:     job.MissingSkills,
		Tips:              job.Tips,
		AIEnhanced:        job.AIEnhanced,
	}
}
