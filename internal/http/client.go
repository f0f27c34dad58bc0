package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/imroc/req/v3"
	"github.com/sirupsen/logrus"
)

// Client wraps a req client configured for one JSON web service.
type Client struct {
	http    *req.Client
	baseURL string
	logger  *logrus.Logger
}

// StatusError is returned when the service answers with a status other
// than 200 OK.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Status, e.URL)
}

// NewClient creates a client resolving request paths against baseURL and
// sending userAgent with every request. logger may be nil.
func NewClient(baseURL, userAgent string, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	c := &Client{
		http:    req.NewClient(),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}

	c.http.SetUserAgent(userAgent).
		SetCommonHeader("Accept", "application/json").
		OnAfterResponse(c.logResponse)

	return c
}

// GetJSON performs a GET request for path with the given query parameters
// and decodes the JSON body into out.
//
// Returns a *StatusError when the response status is not 200 OK.
func (c *Client) GetJSON(ctx context.Context, path string, params map[string]string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetSuccessResult(out).
		Get(c.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			URL:        resp.Request.RawURL,
		}
	}

	return nil
}

func (c *Client) logResponse(_ *req.Client, resp *req.Response) error {
	if resp.Response == nil {
		return nil
	}
	c.logger.WithFields(logrus.Fields{
		"method":   resp.Request.Method,
		"url":      resp.Response.Request.URL.String(),
		"status":   resp.StatusCode,
		"duration": resp.TotalTime(),
	}).Debug("HTTP request")
	return nil
}
