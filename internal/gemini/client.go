package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"promptcalc/internal/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-pro"

	// validationPrompt is the throwaway instruction used to confirm a key
	// works before it gets saved.
	validationPrompt = "Return only the number 1"
)

// ErrNotNumeric means the model answered with something that does not parse
// as a number.
var ErrNotNumeric = errors.New("response text is not a number")

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini: unexpected status %s", e.Status)
}

// Client calls the generateContent endpoint over JSON/HTTP.
type Client struct {
	Base  string
	Model string
	HTTP  *http.Client
}

func NewClient(base, model string, httpClient *http.Client) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, Model: model, HTTP: httpClient}
}

var _ domain.CalculationClient = (*Client)(nil)

// Wire format of the generateContent request/response.
type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Compute asks the model to evaluate `a op b` and parses the answer.
// Divide-by-zero has no special handling here; callers guard before calling.
func (c *Client) Compute(ctx context.Context, a, b float64, op domain.Operator, credential string) (float64, error) {
	prompt := fmt.Sprintf("Calculate %g %s %g and return only the numerical result", a, op.Symbol(), b)
	text, err := c.generate(ctx, prompt, credential)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, strings.TrimSpace(text))
	}
	return v, nil
}

// Validate confirms the credential is accepted by the live endpoint.
func (c *Client) Validate(ctx context.Context, credential string) error {
	_, err := c.generate(ctx, validationPrompt, credential)
	return err
}

// generate posts one instruction and returns the first candidate's first
// text part.
func (c *Client) generate(ctx context.Context, prompt, credential string) (string, error) {
	body := generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return "", err
	}

	url := c.Base + "/v1beta/models/" + c.Model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", credential)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: response has no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
