package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nchavan/jobscout/internal/domain/models"
	"github.com/nchavan/jobscout/internal/logger"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

// AIEnhancer asks a language model for one extra improvement tip for the top
// ranked postings. Any failure leaves the scored job untouched; enhancement
// never affects scores or ordering.
type AIEnhancer struct {
	aiClient aiClient
	topJobs  int
}

func NewAIEnhancer(aiClient aiClient, topJobs int) *AIEnhancer {
	if topJobs <= 0 {
		topJobs = 3
	}
	return &AIEnhancer{aiClient: aiClient, topJobs: topJobs}
}

func (e *AIEnhancer) Enhance(ctx context.Context, profile models.ResumeProfile, jobs []models.ScoredJob) []models.ScoredJob {

	for i := range jobs {
		if i == e.topJobs {
			break
		}

		tip, err := e.aiClient.GenerateResponse(ctx, e.tipRequest(profile, jobs[i]))
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiAPI).
					Errorf("failed to generate tip for posting %v: %v", jobs[i].ID, err)
			}
			continue
		}

		tip = sanitizeTip(tip)
		if tip == "" {
			continue
		}

		if len(jobs[i].Tips) < maxTips {
			jobs[i].Tips = append(jobs[i].Tips, tip)
		} else {
			jobs[i].Tips[maxTips-1] = tip
		}
		jobs[i].AIEnhanced = true
	}

	return jobs
}

func (e *AIEnhancer) tipRequest(profile models.ResumeProfile, job models.ScoredJob) (request string) {

	request = "Job title: " + job.Title
	request += " Description: " + job.Description

	request += " Candidate skills: " + strings.Join(profile.Skills, ", ")
	request += fmt.Sprintf(" Candidate experience: %d years.", profile.ExperienceYears)

	request += " You are advising the candidate how to improve their application for this job. " +
		"Answer with exactly one short actionable tip, one sentence, no markdown."
	return request
}

// sanitizeTip flattens multi-line model output and drops answers too long to
// render as a tip line.
func sanitizeTip(tip string) string {
	tip = strings.Join(strings.Fields(tip), " ")
	if len(tip) > 200 {
		return ""
	}
	return tip
}
