package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTransport covers everything that keeps a GraphQL response from being
// read: connection failures, non-2xx statuses and bodies that are not JSON.
var ErrTransport = errors.New("storefront backend unavailable")

// GraphQLError carries the errors array of a response that reached us.
type GraphQLError struct {
	Operation string
	Messages  []string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("graphql %s: %s", e.Operation, e.Message())
}

// Message is the first error message, the one shown to the user.
func (e *GraphQLError) Message() string {
	if len(e.Messages) == 0 {
		return "unknown error"
	}
	return e.Messages[0]
}

// TokenSource returns the bearer token for the next request, or "".
type TokenSource func() string

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type GraphQLClient struct {
	url   string
	http  *resty.Client
	token TokenSource
	log   *logrus.Logger
}

func NewGraphQLClient(url string, timeout time.Duration, token TokenSource, logger *logrus.Logger) *GraphQLClient {
	if token == nil {
		token = func() string { return "" }
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GraphQLClient{
		url:   url,
		http:  httpClient,
		token: token,
		log:   logger,
	}
}

// Do posts one operation and decodes its data into out. When the response
// carries errors, whatever data could be decoded stays in out and a
// *GraphQLError is returned alongside it.
func (c *GraphQLClient) Do(ctx context.Context, operation, query string, variables map[string]any, out any) error {
	requestID := uuid.NewString()
	c.log.Infof("GraphQLClient: Sending %s (request %s) to %s", operation, requestID, c.url)

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(graphQLRequest{Query: query, Variables: variables})
	if token := c.token(); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(c.url)
	if err != nil {
		c.log.Errorf("GraphQLClient: Failed to execute %s (request %s): %v", operation, requestID, err)
		return fmt.Errorf("%w: %s: %v", ErrTransport, operation, err)
	}
	if !resp.IsSuccess() {
		c.log.Errorf("GraphQLClient: %s (request %s) failed with status %d. Response body: %s",
			operation, requestID, resp.StatusCode(), truncate(resp.Body()))
		return fmt.Errorf("%w: %s returned status %d", ErrTransport, operation, resp.StatusCode())
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		c.log.Errorf("GraphQLClient: %s (request %s) returned a non-JSON body: %v", operation, requestID, err)
		return fmt.Errorf("%w: %s returned a non-JSON body", ErrTransport, operation)
	}

	if out != nil && len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			c.log.Errorf("GraphQLClient: Failed to decode %s data (request %s): %v", operation, requestID, err)
			if len(envelope.Errors) == 0 {
				return fmt.Errorf("%w: failed to decode %s data: %v", ErrTransport, operation, err)
			}
		}
	}

	if len(envelope.Errors) > 0 {
		gqlErr := &GraphQLError{Operation: operation}
		for _, e := range envelope.Errors {
			gqlErr.Messages = append(gqlErr.Messages, e.Message)
		}
		c.log.Warnf("GraphQLClient: %s (request %s) returned %d error(s), first: %s",
			operation, requestID, len(gqlErr.Messages), gqlErr.Message())
		return gqlErr
	}

	c.log.Infof("GraphQLClient: %s (request %s) succeeded", operation, requestID)
	return nil
}

func truncate(body []byte) string {
	const limit = 512
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}

