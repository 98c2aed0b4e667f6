package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"etix/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/tidwall/gjson"
)

var (
	ErrMissingToken      = errors.New("missing authorization token")
	ErrTokenExpired      = errors.New("authorization token has expired")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrServerUnreachable = errors.New("could not reach server")
)

// APIError is a backend rejection (4xx/5xx) carrying the backend's own
// message, relayed to the user without alteration.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type APIClient struct {
	BaseURL    string
	Token      func() string
	HTTPClient *http.Client
}

var apiClient *APIClient

func NewAPIClient(c *APIClient) {
	apiClient = c
}

func GetAPIClient() *APIClient {
	if apiClient != nil {
		return apiClient
	}
	apiClient = &APIClient{
		BaseURL: config.API_HOST,
		Token:   config.SessionToken,
	}
	return apiClient
}

func (c *APIClient) inner() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (c *APIClient) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *APIClient) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *APIClient) do(ctx context.Context, method string, path string, body any) ([]byte, error) {
	token := c.Token()
	if token == "" {
		return nil, ErrMissingToken
	}
	if tokenExpired(token) {
		return nil, ErrTokenExpired
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.inner().Do(req)
	if err != nil {
		log.Printf("Error reaching server: %s\n", err.Error())
		return nil, ErrServerUnreachable
	}
	defer res.Body.Close()
	rbytes, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("Error reading response: %s\n", err.Error())
		return nil, ErrServerUnreachable
	}
	if res.StatusCode == http.StatusUnauthorized {
		return rbytes, ErrUnauthorized
	}
	if res.StatusCode >= http.StatusBadRequest {
		return rbytes, &APIError{StatusCode: res.StatusCode, Message: ExtractMessage(rbytes)}
	}
	return rbytes, nil
}

// ExtractMessage pulls the message field out of a backend response body,
// falling back to a generic message when the body has none.
func ExtractMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "message").String(); msg != "" {
			return msg
		}
		if msg := gjson.GetBytes(body, "error").String(); msg != "" {
			return msg
		}
	}
	return "request failed"
}

// RequiresLogin reports whether err means the user has no usable credential
// and should be routed to login instead of shown an inline error.
func RequiresLogin(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrUnauthorized)
}

// tokenExpired inspects the bearer JWT's exp claim without verifying the
// signature; verification is the backend's job. Opaque tokens pass through.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
