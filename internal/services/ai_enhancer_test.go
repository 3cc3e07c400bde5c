package services

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nchavan/jobscout/internal/domain/models"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func scoredJob(title string, tips ...string) models.ScoredJob {
	return models.ScoredJob{
		JobPosting: models.JobPosting{Title: title, Description: "some description"},
		MatchScore: 70,
		Tips:       tips,
	}
}

func Test_Enhance_ShouldAppendTipAndMarkJob(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("Mention your open source work", nil)

	enhancer := NewAIEnhancer(client, 3)

	jobs := enhancer.Enhance(context.Background(), models.ResumeProfile{}, []models.ScoredJob{
		scoredJob("Backend Engineer", "existing tip"),
	})

	assert.Equal(t, []string{"existing tip", "Mention your open source work"}, jobs[0].Tips)
	assert.True(t, jobs[0].AIEnhanced)
}

func Test_Enhance_WhenTipsAreFull_ShouldReplaceLast(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("Fresh advice", nil)

	enhancer := NewAIEnhancer(client, 1)

	jobs := enhancer.Enhance(context.Background(), models.ResumeProfile{}, []models.ScoredJob{
		scoredJob("Backend Engineer", "first", "second", "third"),
	})

	assert.Equal(t, []string{"first", "second", "Fresh advice"}, jobs[0].Tips)
	assert.True(t, jobs[0].AIEnhanced)
}

func Test_Enhance_ShouldOnlyTouchTopJobs(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("A tip", nil).Twice()

	enhancer := NewAIEnhancer(client, 2)

	jobs := enhancer.Enhance(context.Background(), models.ResumeProfile{}, []models.ScoredJob{
		scoredJob("First"),
		scoredJob("Second"),
		scoredJob("Third"),
	})

	assert.True(t, jobs[0].AIEnhanced)
	assert.True(t, jobs[1].AIEnhanced)
	assert.False(t, jobs[2].AIEnhanced)
	assert.Empty(t, jobs[2].Tips)
	client.AssertNumberOfCalls(t, "GenerateResponse", 2)
}

func Test_Enhance_WhenClientFails_ShouldLeaveJobUntouched(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	enhancer := NewAIEnhancer(client, 3)

	jobs := enhancer.Enhance(context.Background(), models.ResumeProfile{}, []models.ScoredJob{
		scoredJob("Backend Engineer", "existing tip"),
	})

	assert.Equal(t, []string{"existing tip"}, jobs[0].Tips)
	assert.False(t, jobs[0].AIEnhanced)
}

func Test_Enhance_ShouldSanitizeModelOutput(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("  Lead with\nyour  measurable   impact \n", nil)

	enhancer := NewAIEnhancer(client, 1)

	jobs := enhancer.Enhance(context.Background(), models.ResumeProfile{}, []models.ScoredJob{
		scoredJob("Backend Engineer"),
	})

	assert.Equal(t, []string{"Lead with your measurable impact"}, jobs[0].Tips)
}

func Test_Enhance_ShouldDropOverlongAnswers(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(strings.Repeat("verbose ", 40), nil)

	enhancer := NewAIEnhancer(client, 1)

	jobs := enhancer.Enhance(context.Background(), models.ResumeProfile{}, []models.ScoredJob{
		scoredJob("Backend Engineer"),
	})

	assert.Empty(t, jobs[0].Tips)
	assert.False(t, jobs[0].AIEnhanced)
}

func Test_Enhance_RequestMentionsJobAndCandidate(t *testing.T) {

	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.MatchedBy(func(request string) bool {
		return strings.Contains(request, "Backend Engineer") &&
			strings.Contains(request, "python, sql") &&
			strings.Contains(request, "3 years")
	})).Return("A tip", nil)

	enhancer := NewAIEnhancer(client, 1)

	profile := models.ResumeProfile{Skills: []string{"python", "sql"}, ExperienceYears: 3}
	enhancer.Enhance(context.Background(), profile, []models.ScoredJob{scoredJob("Backend Engineer")})

	client.AssertExpectations(t)
}
