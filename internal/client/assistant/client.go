package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-resty/resty/v2"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/model"
)

// Client talks to the live assistant backend. The backend is a black box:
// it takes one human turn (text plus raw attachment payloads plus the
// caller identity) and returns the assistant's reply text.
type Client struct {
	baseURL string
	rest    *resty.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Assistant.BaseURL,
		rest:    resty.New(),
	}
}

type exchangeResponse struct {
	Content string `json:"content"`
}

type scheduleResponse struct {
	Schedule []model.ScheduleItem `json:"schedule"`
}

// Exchange posts one human turn as a multipart request and returns the
// reply text. A missing or empty content field in the response body is
// treated the same as a transport failure.
func (c *Client) Exchange(ctx context.Context, callerID, content string, attachments []model.Attachment) (string, error) {
	// SetMultipartFormData keeps the request multipart even when no file
	// parts follow; the backend only parses multipart bodies.
	req := c.rest.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"message": content,
			"user_id": callerID,
		})

	files := make([]*os.File, 0, len(attachments))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()

	for _, att := range attachments {
		f, err := os.Open(att.Location)
		if err != nil {
			return "", fmt.Errorf("failed to open attachment %q: %v", att.Name, err)
		}
		files = append(files, f)
		req.SetFileReader("files", att.Name, f)
	}

	resp, err := req.Post(c.baseURL + "/chat")
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var result exchangeResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if result.Content == "" {
		return "", fmt.Errorf("response has no content")
	}

	return result.Content, nil
}

// GetSchedule fetches the schedule the backend derived from the
// conversation so far.
func (c *Client) GetSchedule(ctx context.Context, callerID string) ([]model.ScheduleItem, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user_id": callerID}).
		Post(c.baseURL + "/get_schedule")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var result scheduleResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %v", err)
	}

	return result.Schedule, nil
}
