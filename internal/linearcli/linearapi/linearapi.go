// Package linearapi is a small typed client for the Linear GraphQL API.
package linearapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
	"github.com/dimasma0305/linearcli/internal/log"
)

// DefaultURL is Linear's public GraphQL endpoint.
const DefaultURL = "https://api.linear.app/graphql"

// Client talks to one Linear workspace with one API key.
//
//nolint:revive // Url kept for parity with the other API clients
type Client struct {
	Url    string
	Client *req.Client
}

// Option configures a Client.
type Option func(*Client)

// WithURL points the client at a different GraphQL endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.Url = url
	}
}

// WithTimeout sets the per-request timeout. Zero, the default, leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.Client.SetTimeout(d)
	}
}

// New creates a client authenticated with apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrEmptyAPIKey
	}

	c := &Client{
		Url: DefaultURL,
		Client: req.C().
			SetUserAgent("000-cli").
			SetCommonHeader("Authorization", apiKey).
			SetCommonContentType("application/json").
			SetTimeout(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Url == "" {
		return nil, errors.ErrEmptyURL
	}
	c.Url = strings.TrimRight(c.Url, "/")
	return c, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage    `json:"data"`
	Errors []GraphQLErrorItem `json:"errors"`
}

// GraphQLErrorItem is one entry of a GraphQL "errors" array.
type GraphQLErrorItem struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// GraphQLError is returned when the API answers with a non-empty "errors" array.
type GraphQLError struct {
	Operation string
	Errors    []GraphQLErrorItem
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		if item.Message != "" {
			msgs = append(msgs, item.Message)
		}
	}
	if len(msgs) == 0 {
		return fmt.Sprintf("%s failed", e.Operation)
	}
	return strings.Join(msgs, "; ")
}

// do executes one GraphQL operation and decodes "data" into out.
func (c *Client) do(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	if c == nil || c.Client == nil {
		return fmt.Errorf("linear client is not initialized")
	}

	log.DebugH3("GraphQL %s -> %s", operation, c.Url)

	resp, err := c.Client.R().
		SetContext(ctx).
		SetBodyJsonMarshal(graphqlRequest{Query: query, Variables: variables}).
		Post(c.Url)
	if err != nil {
		log.Debug("%s request failed: %v", operation, err)
		return err
	}

	var body graphqlResponse
	decodeErr := resp.UnmarshalJson(&body)

	if decodeErr == nil && len(body.Errors) > 0 {
		return &GraphQLError{Operation: operation, Errors: body.Errors}
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("request end with %d status, %s", resp.StatusCode, resp.String())
	}
	if decodeErr != nil {
		return fmt.Errorf("error unmarshal json: %w, %s", decodeErr, resp.String())
	}

	if out != nil {
		if len(body.Data) == 0 || string(body.Data) == "null" {
			return fmt.Errorf("%s returned no data", operation)
		}
		if err := json.Unmarshal(body.Data, out); err != nil {
			return fmt.Errorf("error unmarshal %s data: %w", operation, err)
		}
	}

	log.DebugH3("GraphQL %s successful", operation)
	return nil
}
