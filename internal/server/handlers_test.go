package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nchavan/jobscout/internal/domain/models"
	"github.com/nchavan/jobscout/internal/services"
)

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) Extract(text string, expectedRole string) (models.ResumeProfile, error) {
	args := m.Called(text, expectedRole)
	return args.Get(0).(models.ResumeProfile), args.Error(1)
}

type mockMatcher struct {
	mock.Mock
}

func (m *mockMatcher) Match(ctx context.Context, profile models.ResumeProfile, location string) []models.ScoredJob {
	args := m.Called(ctx, profile, location)
	return args.Get(0).([]models.ScoredJob)
}

func newTestRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/resume", handler.ParseResume)
	router.POST("/api/v1/match", handler.Match)
	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func Test_ParseResume_ShouldReturnProfile(t *testing.T) {

	extractor := &mockExtractor{}
	extractor.On("Extract", "some resume text", "Backend Engineer").Return(models.ResumeProfile{
		Skills:          []string{"go", "sql"},
		ExperienceYears: 3,
		HasEducation:    true,
		ExpectedRole:    "Backend Engineer",
	}, nil)

	router := newTestRouter(NewHandler(extractor, &mockMatcher{}))

	recorder := postJSON(router, "/api/v1/resume",
		`{"resume_text": "some resume text", "expected_role": "Backend Engineer"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response profileResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, []string{"go", "sql"}, response.Skills)
	assert.Equal(t, 3, response.ExperienceYears)
	assert.True(t, response.HasEducation)
}

func Test_ParseResume_WhenBodyIsInvalid_ShouldReturnBadRequest(t *testing.T) {

	router := newTestRouter(NewHandler(&mockExtractor{}, &mockMatcher{}))

	recorder := postJSON(router, "/api/v1/resume", `{"expected_role": "Backend Engineer"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postJSON(router, "/api/v1/resume", `not json at all`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func Test_ParseResume_WhenTextIsNotExtractable_ShouldReturnUnprocessable(t *testing.T) {

	extractor := &mockExtractor{}
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return(models.ResumeProfile{}, services.ErrNoTextContent)

	router := newTestRouter(NewHandler(extractor, &mockMatcher{}))

	recorder := postJSON(router, "/api/v1/resume", `{"resume_text": "----"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func Test_ParseResume_WhenExtractionFailsUnexpectedly_ShouldReturnServerError(t *testing.T) {

	extractor := &mockExtractor{}
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return(models.ResumeProfile{}, errors.New("boom"))

	router := newTestRouter(NewHandler(extractor, &mockMatcher{}))

	recorder := postJSON(router, "/api/v1/resume", `{"resume_text": "some text"}`)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func Test_Match_ShouldReturnRankedJobs(t *testing.T) {

	profile := models.ResumeProfile{Skills: []string{"go"}, ExpectedRole: "Backend Engineer"}

	extractor := &mockExtractor{}
	extractor.On("Extract", "some resume text", "Backend Engineer").Return(profile, nil)

	matcher := &mockMatcher{}
	matcher.On("Match", mock.Anything, profile, "Pune").Return([]models.ScoredJob{
		{
			JobPosting: models.JobPosting{ID: "1", Title: "Backend Engineer", Company: "Acme Corp", Source: "adzuna"},
			MatchScore: 82,
			Tips:       []string{"a tip"},
		},
	})

	router := newTestRouter(NewHandler(extractor, matcher))

	recorder := postJSON(router, "/api/v1/match",
		`{"resume_text": "some resume text", "expected_role": "Backend Engineer", "preferred_location": "Pune"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response matchResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response.Jobs, 1)
	assert.Equal(t, 82, response.Jobs[0].MatchScore)
	assert.Equal(t, "Backend Engineer", response.Jobs[0].Title)
	assert.Empty(t, response.Message)
}

func Test_Match_WhenNothingMatches_ShouldExplain(t *testing.T) {

	extractor := &mockExtractor{}
	extractor.On("Extract", mock.Anything, mock.Anything).Return(models.ResumeProfile{}, nil)

	matcher := &mockMatcher{}
	matcher.On("Match", mock.Anything, mock.Anything, mock.Anything).Return([]models.ScoredJob{})

	router := newTestRouter(NewHandler(extractor, matcher))

	recorder := postJSON(router, "/api/v1/match",
		`{"resume_text": "some resume text", "expected_role": "Backend Engineer"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response matchResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response.Jobs)
	assert.NotEmpty(t, response.Message)
}

func Test_Match_WhenRoleIsMissing_ShouldReturnBadRequest(t *testing.T) {

	router := newTestRouter(NewHandler(&mockExtractor{}, &mockMatcher{}))

	recorder := postJSON(router, "/api/v1/match", `{"resume_text": "some resume text"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
