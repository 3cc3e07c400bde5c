package themuse

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

const apiURL = "https://www.themuse.com/api/public/jobs"

type searchResponse struct {
	Results []jobResult `json:"results"`
}

type jobResult struct {
	ID      json.Number `json:"id"`
	Name    string      `json:"name"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Locations []struct {
		Name string `json:"name"`
	} `json:"locations"`
	Contents        string `json:"contents"`
	PublicationDate string `json:"publication_date"`
	Refs            struct {
		LandingPage string `json:"landing_page"`
	} `json:"refs"`
}

// Job is one posting as The Muse reports it, before normalization.
type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	CreatedAt   time.Time
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to The Muse public job board. No credential is required; the
// public api_key value grants a limited request quota.
type Client struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Search queries the first page of postings for a category and location.
func (c *Client) Search(ctx context.Context, category, location string) ([]Job, error) {

	params := url.Values{}
	params.Add("category", category)
	if location != "" {
		params.Add("location", location)
	}
	params.Add("page", "0")
	params.Add("descending", "true")
	params.Add("api_key", "public")

	body, err := c.sendRequest(ctx, apiURL+"?"+params.Encode())
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
		Title:       result.Name,
		Company:     result.Company.Name,
		Description: result.Contents,
		URL:         result.Refs.LandingPage,
	}

	if len(result.Locations) > 0 {
		job.Location = result.Locations[0].Name
	}

	if result.PublicationDate != "" {
		if published, err := time.Parse(time.RFC3339, result.PublicationDate); err == nil {
			job.CreatedAt = published
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
