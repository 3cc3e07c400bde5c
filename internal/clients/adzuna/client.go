package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const apiBaseURL = "https://api.adzuna.com/v1/api/jobs"

type searchResponse struct {
	Results []jobResult `json:"results"`
}

type jobResult struct {
	ID      json.Number `json:"id"`
	Title   string      `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string  `json:"description"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	RedirectURL string  `json:"redirect_url"`
	Created     string  `json:"created"`
}

// Job is one posting as Adzuna reports it, before normalization.
type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Description string
	SalaryMin   float64
	SalaryMax   float64
	URL         string
	CreatedAt   time.Time
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	appID       string
	appKey      string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(appID, appKey string) *Client {
	return &Client{appID: appID, appKey: appKey, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Search queries one page of postings for a country code ("in", "us", ...).
func (c *Client) Search(ctx context.Context, query, country string, perPage int) ([]Job, error) {

	params := url.Values{}
	params.Add("app_id", c.appID)
	params.Add("app_key", c.appKey)
	params.Add("what", query)
	params.Add("results_per_page", strconv.Itoa(perPage))

	apiURL := fmt.Sprintf("%s/%s/search/1?%s", apiBaseURL, country, params.Encode())

	body, err := c.sendRequest(ctx, apiURL)
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	jobs := make([]Job, 0, len(response.Results))
	for _, result := range response.Results {
		jobs = append(jobs, mapResult(result))
	}
	return jobs, nil
}

func mapResult(result jobResult) Job {
	job := Job{
		ID:          result.ID.String(),
		Title:       result.Title,
		Company:     result.Company.DisplayName,
		Location:    result.Location.DisplayName,
		Description: result.Description,
		SalaryMin:   result.SalaryMin,
		SalaryMax:   result.SalaryMax,
		URL:         result.RedirectURL,
	}

	if result.Created != "" {
		if created, err := time.Parse(time.RFC3339, result.Created); err == nil {
			job.CreatedAt = created
		}
	}
	return job
}

func (c *Client) sendRequest(ctx context.Context, url string) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
