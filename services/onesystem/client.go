package onesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultPageSize is the page size the sync pipeline requests from upstream.
const DefaultPageSize = 200

// errorBodyLimit caps how much of an upstream error body is carried into the
// returned error message.
const errorBodyLimit = 200

// ClientConfig holds configuration for the upstream client
type ClientConfig struct {
	BaseURL        string
	Timeout        int // seconds
	RateLimitDelay int // milliseconds between page fetches
	CustomHeaders  map[string]string
}

// Client talks to the university information system's arrangement-service
// API. Authentication is an opaque session cookie captured by the caller and
// passed through unchanged.
type Client struct {
	Config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a new upstream client instance
func NewClient(baseURL string) *Client {
	config := ClientConfig{
		BaseURL:        baseURL,
		Timeout:        120,
		RateLimitDelay: 0,
		CustomHeaders: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
			"Referer":    "https://1.tongji.edu.cn/taskResultQuery",
		},
	}

	return &Client{
		Config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

// pagePayload is the request body of the manual-arrange page endpoint.
type pagePayload struct {
	Condition pageCondition `json:"condition"`
	PageNum   int           `json:"pageNum_"`
	PageSize  int           `json:"pageSize_"`
}

type pageCondition struct {
	TrainingLevel     string `json:"trainingLevel"`
	Campus            string `json:"campus"`
	Calendar          int    `json:"calendar"`
	College           string `json:"college"`
	Course            string `json:"course"`
	IDs               []int  `json:"ids"`
	IsChineseTeaching *bool  `json:"isChineseTeaching"`
}

// FetchArrangePage fetches one page of teaching-class records for a calendar.
// A non-2xx status or an undecodable body is a hard error; individual list
// entries that do not decode as records are dropped.
func (c *Client) FetchArrangePage(ctx context.Context, sessionCookie string, calendarID, pageNum, pageSize int) (*Page, error) {
	payload := pagePayload{
		Condition: pageCondition{
			Calendar: calendarID,
			IDs:      []int{},
		},
		PageNum:  pageNum,
		PageSize: pageSize,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.Config.BaseURL + "/api/arrangementservice/manualArrange/page?profile"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", sessionCookie)
	for key, value := range c.Config.CustomHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onesystem request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("onesystem request failed: HTTP %d %s", resp.StatusCode, string(excerpt))
	}

	var envelope pageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("onesystem response decode failed: %w", err)
	}

	page := &Page{Total: int(envelope.Data.Total.Int)}
	for _, raw := range envelope.Data.List {
		var record ClassRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			// Unexpected entry shape; drop it rather than fail the page.
			continue
		}
		page.List = append(page.List, record)
	}

	return page, nil
}
