// Package magentic talks to the externally hosted multi-agent fare runtime.
// The orchestration (web browsing, code execution, sub-agent coordination)
// runs inside that service; this client only opens sessions and consumes the
// resulting ordered message stream.
package magentic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/farescout/farescout/pkg/provider"
	"github.com/farescout/farescout/pkg/runtime"
)

// Config describes how to reach the orchestrator and which chat-completion
// credentials it should run the team with.
type Config struct {
	// BaseURL is the orchestrator's HTTP base, e.g. http://localhost:8700.
	BaseURL     string
	Credentials provider.Credentials
	// HTTPClient overrides the session-open client. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Dialer overrides the stream dialer. Defaults to websocket.DefaultDialer.
	Dialer *websocket.Dialer
}

// Client is the production runtime.Team backed by the orchestrator service.
type Client struct {
	baseURL    string
	creds      provider.Credentials
	httpClient *http.Client
	dialer     *websocket.Dialer
}

var _ runtime.Team = (*Client)(nil)

func NewTeam(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	dialer := cfg.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		creds:      cfg.Credentials,
		httpClient: httpClient,
		dialer:     dialer,
	}
}

type openSessionRequest struct {
	Task   string               `json:"task"`
	Client provider.Credentials `json:"client"`
}

type openSessionResponse struct {
	SessionID string `json:"session_id"`
	Error     string `json:"error,omitempty"`
}

// openSession registers the task with the orchestrator and returns the
// session id to stream from. Configuration problems the orchestrator detects
// (bad endpoint, rejected key) come back here and propagate to the caller.
func (c *Client) openSession(ctx context.Context, task string) (string, error) {
	body, err := json.Marshal(openSessionRequest{Task: task, Client: c.creds})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/sessions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to open runtime session: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed openSessionResponse
	if err := json.Unmarshal(data, &parsed); err != nil || parsed.SessionID == "" {
		if parsed.Error != "" {
			return "", fmt.Errorf("runtime rejected session: %s", parsed.Error)
		}
		return "", fmt.Errorf("runtime rejected session: %s: %s", resp.Status, data)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("runtime rejected session: %s", resp.Status)
	}
	return parsed.SessionID, nil
}

// streamURL converts the HTTP base into the websocket stream endpoint.
func (c *Client) streamURL(sessionID string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid runtime base url %q: %w", c.baseURL, err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = fmt.Sprintf("%s/v1/sessions/%s/stream", u.Path, sessionID)
	return u.String(), nil
}

// RunStream implements runtime.Team. The sequence is lazy and non-restartable:
// frames are read from the socket as the consumer advances, and iteration ends
// after the task-result frame or on the first error.
func (c *Client) RunStream(ctx context.Context, task string) iter.Seq2[runtime.Message, error] {
	return func(yield func(runtime.Message, error) bool) {
		sessionID, err := c.openSession(ctx, task)
		if err != nil {
			yield(runtime.Message{}, err)
			return
		}

		streamURL, err := c.streamURL(sessionID)
		if err != nil {
			yield(runtime.Message{}, err)
			return
		}

		conn, _, err := c.dialer.DialContext(ctx, streamURL, nil)
		if err != nil {
			yield(runtime.Message{}, fmt.Errorf("failed to connect to runtime stream: %w", err))
			return
		}
		defer conn.Close()

		for {
			_, frame, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return
				}
				yield(runtime.Message{}, fmt.Errorf("runtime stream error: %w", err))
				return
			}

			var wire wireMessage
			if err := json.Unmarshal(frame, &wire); err != nil {
				yield(runtime.Message{}, fmt.Errorf("malformed runtime frame: %w", err))
				return
			}

			msg, err := wire.toMessage()
			if err != nil {
				yield(runtime.Message{}, err)
				return
			}

			if !yield(msg, nil) {
				return
			}
			if msg.IsFinal() {
				return
			}
		}
	}
}
