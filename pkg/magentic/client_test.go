package magentic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/farescout/farescout/pkg/provider"
	"github.com/farescout/farescout/pkg/runtime"
)

// fakeOrchestrator serves the session-open and stream endpoints with a
// scripted frame sequence.
type fakeOrchestrator struct {
	frames      []wireMessage
	lastRequest openSessionRequest
	rejectOpen  string
}

func (f *fakeOrchestrator) server(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	router := mux.NewRouter()
	router.HandleFunc("/v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&f.lastRequest); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if f.rejectOpen != "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"error": f.rejectOpen})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-1"})
	}).Methods("POST")

	router.HandleFunc("/v1/sessions/{id}/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		for _, frame := range f.frames {
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		}
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	})

	return httptest.NewServer(router)
}

func collect(t *testing.T, team runtime.Team, task string) ([]runtime.Message, error) {
	t.Helper()
	var msgs []runtime.Message
	for msg, err := range team.RunStream(context.Background(), task) {
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func TestRunStreamDeliversOrderedSequence(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47}
	orch := &fakeOrchestrator{
		frames: []wireMessage{
			{Type: "text", Source: "MagenticOneOrchestrator", Content: "planning"},
			{Type: "multimodal", Source: "WebSurfer", Image: base64.StdEncoding.EncodeToString(png)},
			{Type: "task_result", Source: "MagenticOneOrchestrator", Content: "best: option 2",
				Messages: []wireMessage{
					{Type: "text", Source: "user", Content: "task"},
					{Type: "text", Source: "WebSurfer", Content: "found", Usage: &runtime.Usage{PromptTokens: 9, CompletionTokens: 4}},
				}},
		},
	}
	srv := orch.server(t)
	defer srv.Close()

	team := NewTeam(Config{
		BaseURL: srv.URL,
		Credentials: provider.Credentials{
			Provider: "openai",
			Model:    "gpt-4o-mini",
			APIKey:   "test-key",
		},
	})

	msgs, err := collect(t, team, "find flights")
	if err != nil {
		t.Fatalf("RunStream returned error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}

	if msgs[0].Kind != runtime.KindText || msgs[0].Content != "planning" {
		t.Errorf("msg[0] = %+v", msgs[0])
	}
	if msgs[1].Kind != runtime.KindMultiModal || string(msgs[1].Image) != string(png) {
		t.Errorf("msg[1] image not decoded, got %v", msgs[1].Image)
	}
	final := msgs[2]
	if !final.IsFinal() {
		t.Fatalf("msg[2] is not the task result: %+v", final)
	}
	if len(final.Transcript) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(final.Transcript))
	}
	if final.Transcript[1].Usage == nil || final.Transcript[1].Usage.PromptTokens != 9 {
		t.Errorf("transcript usage lost: %+v", final.Transcript[1])
	}

	// The task and credentials must reach the orchestrator on session open.
	if orch.lastRequest.Task != "find flights" {
		t.Errorf("task = %q", orch.lastRequest.Task)
	}
	if orch.lastRequest.Client.APIKey != "test-key" || orch.lastRequest.Client.Model != "gpt-4o-mini" {
		t.Errorf("credentials not forwarded: %+v", orch.lastRequest.Client)
	}
}

func TestRunStreamSessionOpenRejectionPropagates(t *testing.T) {
	orch := &fakeOrchestrator{rejectOpen: "invalid api key"}
	srv := orch.server(t)
	defer srv.Close()

	team := NewTeam(Config{BaseURL: srv.URL})
	msgs, err := collect(t, team, "task")
	if err == nil {
		t.Fatal("expected error from rejected session open")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("err = %v, want orchestrator reason", err)
	}
	if len(msgs) != 0 {
		t.Errorf("got %d messages before rejection, want 0", len(msgs))
	}
}

func TestRunStreamStopsAtTaskResult(t *testing.T) {
	orch := &fakeOrchestrator{
		frames: []wireMessage{
			{Type: "task_result", Source: "MagenticOneOrchestrator", Content: "done"},
			{Type: "text", Source: "WebSurfer", Content: "never delivered"},
		},
	}
	srv := orch.server(t)
	defer srv.Close()

	team := NewTeam(Config{BaseURL: srv.URL})
	msgs, err := collect(t, team, "task")
	if err != nil {
		t.Fatalf("RunStream returned error: %v", err)
	}
	if len(msgs) != 1 || !msgs[0].IsFinal() {
		t.Errorf("stream should end at the task result, got %d messages", len(msgs))
	}
}

func TestRunStreamUnreachableRuntime(t *testing.T) {
	team := NewTeam(Config{BaseURL: "http://127.0.0.1:1"})
	if _, err := collect(t, team, "task"); err == nil {
		t.Fatal("expected error for unreachable runtime")
	}
}

func TestStreamURLSchemes(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8700", "ws://localhost:8700/v1/sessions/abc/stream"},
		{"https://runtime.example.com", "wss://runtime.example.com/v1/sessions/abc/stream"},
	}
	for _, tt := range tests {
		c := NewTeam(Config{BaseURL: tt.base})
		got, err := c.streamURL("abc")
		if err != nil {
			t.Fatalf("streamURL(%q) error: %v", tt.base, err)
		}
		if got != tt.want {
			t.Errorf("streamURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
