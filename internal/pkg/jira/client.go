package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nzdigital/capdev-backend-go/internal/config"
)

// jiraTimeLayout is the timestamp format Jira Cloud returns for date-time
// fields such as "updated".
const jiraTimeLayout = "2006-01-02T15:04:05.000-0700"

const pageSize = 50

// Issue is the slice of a Jira issue the sync job cares about: which project
// it belongs to and when it was last touched.
type Issue struct {
	Key         string
	ProjectKey  string
	ProjectName string
	Updated     time.Time
}

type Client struct {
	baseURL  string
	username string
	apiToken string
	http     *http.Client
	logger   *slog.Logger
}

func NewClient(cfg config.JiraConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		apiToken: cfg.APIToken,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

// BoardIssues pages through all issues on an agile board that were updated
// at or after since.
func (c *Client) BoardIssues(ctx context.Context, jiraBoardID string, since time.Time) ([]Issue, error) {
	if jiraBoardID == "" {
		return nil, errors.New("jira: empty board id")
	}

	var issues []Issue
	startAt := 0
	for {
		page, err := c.boardIssuePage(ctx, jiraBoardID, since, startAt)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Issues {
			updated, err := time.Parse(jiraTimeLayout, raw.Fields.Updated)
			if err != nil {
				c.logger.Warn("skipping issue with unparseable updated timestamp",
					"issue", raw.Key,
					"updated", raw.Fields.Updated,
				)
				continue
			}
			issues = append(issues, Issue{
				Key:         raw.Key,
				ProjectKey:  raw.Fields.Project.Key,
				ProjectName: raw.Fields.Project.Name,
				Updated:     updated,
			})
		}

		startAt += len(page.Issues)
		if startAt >= page.Total || len(page.Issues) == 0 {
			return issues, nil
		}
	}
}

type issuePage struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Issues     []rawIssue `json:"issues"`
}

type rawIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Updated string `json:"updated"`
		Project struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"project"`
	} `json:"fields"`
}

func (c *Client) boardIssuePage(ctx context.Context, jiraBoardID string, since time.Time, startAt int) (issuePage, error) {
	q := url.Values{}
	q.Set("fields", "project,updated")
	q.Set("jql", fmt.Sprintf(`updated >= "%s"`, since.Format("2006-01-02")))
	q.Set("startAt", strconv.Itoa(startAt))
	q.Set("maxResults", strconv.Itoa(pageSize))

	u := c.baseURL + "/rest/agile/1.0/board/" + url.PathEscape(jiraBoardID) + "/issue?" + q.Encode()

	var page issuePage
	if err := c.getJSON(ctx, u, &page); err != nil {
		return issuePage{}, err
	}
	return page, nil
}

// getJSON performs an authenticated GET with retries on 429 and 5xx.
func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	if c.baseURL == "" {
		return errors.New("jira: empty base url")
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.SetBasicAuth(c.username, c.apiToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 300 {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			err := fmt.Errorf("jira api status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = err
				continue
			}
			return err
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		return err
	}
	return lastErr
}
