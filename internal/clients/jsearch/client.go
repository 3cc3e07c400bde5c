package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	apiURL  = "https://jsearch.p.rapidapi.com/search"
	apiHost = "jsearch.p.rapidapi.com"
)

type searchResponse struct {
	Data []jobResult `json:"data"`
}

type jobResult struct {
	JobID         string  `json:"job_id"`
	Title         string  `json:"job_title"`
	Employer      string  `json:"employer_name"`
	City          string  `json:"job_city"`
	State         string  `json:"job_state"`
	Description   string  `json:"job_description"`
	MinSalary     float64 `json:"job_min_salary"`
	MaxSalary     float64 `json:"job_max_salary"`
	ApplyLink     string  `json:"job_apply_link"`
	GoogleLink    string  `json:"job_google_link"`
	PostedAtUTC   string  `json:"job_posted_at_datetime_utc"`
}

// Job is one posting as JSearch reports it, before normalization.
type Job struct {
	ID          string
	Title       string
	Company     string
	City        string
	State       string
	Description string
	MinSalary   float64
	MaxSalary   float64
	URL         string
	CreatedAt   time.Time
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the JSearch aggregator on RapidAPI.
type Client struct {
	apiKey      string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Search queries one page of postings for a country code ("IN", "US", ...).
func (c *Client) Search(ctx context.Context, query, country string) ([]Job, error) {

	params := url.Values{}
	params.Add("query", query)
	params.Add("page", "1")
	params.Add("num_pages", "1")
	params.Add("country", country)
	params.Add("date_posted", "all")

	body, err := c.sendRequest(ctx, apiURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	jobs := make([]Job, 0, len(response.Data))
	for _, result := range response.Data {
		jobs = append(jobs, mapResult(result))
	}
	return jobs, nil
}

func mapResult(result jobResult) Job {
	job := Job{
		ID:          result.JobID,
		Title:       result.Title,
		Company:     result.Employer,
		City:        result.City,
		State:       result.State,
		Description: result.Description,
		MinSalary:   result.MinSalary,
		MaxSalary:   result.MaxSalary,
		URL:         result.ApplyLink,
	}

	if job.URL == "" {
		job.URL = result.GoogleLink
	}

	if result.PostedAtUTC != "" {
		if posted, err := time.Parse(time.RFC3339, result.PostedAtUTC); err == nil {
			job.CreatedAt = posted
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
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", apiHost)

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
