package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptcalc/internal/domain"
	"promptcalc/internal/gemini"
)

// capturedRequest records what the fake endpoint received.
type capturedRequest struct {
	path   string
	apiKey string
	prompt string
}

// newTestClient starts a fake generateContent endpoint answering every
// request with the given text, and returns a client pointed at it.
func newTestClient(t *testing.T, answer string, status int) (*gemini.Client, *capturedRequest) {
	t.Helper()

	var got capturedRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.apiKey = r.Header.Get("x-goog-api-key")

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body.Contents)
		require.NotEmpty(t, body.Contents[0].Parts)
		got.prompt = body.Contents[0].Parts[0].Text

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": answer}}}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gemini.NewClient(server.URL, "gemini-pro", server.Client()), &got
}

func TestCompute_BuildsPromptAndHeaders(t *testing.T) {
	client, got := newTestClient(t, "2", http.StatusOK)

	v, err := client.Compute(context.Background(), 6, 3, domain.OpDivide, "test-key")
	require.NoError(t, err)

	assert.Equal(t, 2.0, v)
	assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", got.path)
	assert.Equal(t, "test-key", got.apiKey)
	assert.Equal(t, "Calculate 6 / 3 and return only the numerical result", got.prompt)
}

func TestCompute_TrimsAnswerWhitespace(t *testing.T) {
	client, _ := newTestClient(t, "  7.5\n", http.StatusOK)

	v, err := client.Compute(context.Background(), 3, 4.5, domain.OpAdd, "k")
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
}

func TestCompute_NonNumericAnswer(t *testing.T) {
	client, _ := newTestClient(t, "approximately four", http.StatusOK)

	_, err := client.Compute(context.Background(), 2, 2, domain.OpAdd, "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, gemini.ErrNotNumeric)
}

func TestCompute_RemoteStatusError(t *testing.T) {
	client, _ := newTestClient(t, "", http.StatusForbidden)

	_, err := client.Compute(context.Background(), 1, 2, domain.OpMultiply, "bad-key")
	require.Error(t, err)

	var statusErr *gemini.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
}

func TestCompute_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := gemini.NewClient(server.URL, "", nil)
	server.Close() // connection refused from here on

	_, err := client.Compute(context.Background(), 1, 2, domain.OpAdd, "k")
	require.Error(t, err)

	var statusErr *gemini.StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failure must not map to a status error")
}

func TestValidate_SendsThrowawayPrompt(t *testing.T) {
	client, got := newTestClient(t, "1", http.StatusOK)

	require.NoError(t, client.Validate(context.Background(), "test-key"))
	assert.Equal(t, "Return only the number 1", got.prompt)
	assert.Equal(t, "test-key", got.apiKey)
}

func TestValidate_RejectedKey(t *testing.T) {
	client, _ := newTestClient(t, "", http.StatusBadRequest)

	err := client.Validate(context.Background(), "nope")
	var statusErr *gemini.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
}
