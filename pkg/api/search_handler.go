package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/farescout/farescout/pkg/config"
	"github.com/farescout/farescout/pkg/magentic"
	"github.com/farescout/farescout/pkg/presenter"
	"github.com/farescout/farescout/pkg/provider"
	"github.com/farescout/farescout/pkg/runtime"
	"github.com/farescout/farescout/pkg/travel"
)

// SearchRequest represents the request body for /api/search
type SearchRequest struct {
	DepartureDate string `json:"departureDate"` // YYYY-MM-DD
	ReturnDate    string `json:"returnDate"`    // YYYY-MM-DD
	From          string `json:"from"`
	To            string `json:"to"`
	Passengers    int    `json:"passengers"`
	Airline       string `json:"airline"`
	Cabin         string `json:"cabin"`
	Provider      string `json:"provider,omitempty"`
	Model         string `json:"model,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
}

// TeamFactory builds the runtime client for one search. Swapped for a
// scripted team in tests.
type TeamFactory func(cfg magentic.Config) runtime.Team

// SearchHandler runs fare searches and streams progress over SSE.
type SearchHandler struct {
	Teams    TeamFactory
	Sessions *SessionManager
}

func NewSearchHandler(sm *SessionManager) *SearchHandler {
	return &SearchHandler{
		Teams:    func(cfg magentic.Config) runtime.Team { return magentic.NewTeam(cfg) },
		Sessions: sm,
	}
}

// SendSSE sends a Server-Sent Event
func SendSSE(w io.Writer, flusher http.Flusher, eventType string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		fmt.Printf("Error marshaling SSE data: %v\n", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, payload)
	if flusher != nil {
		flusher.Flush()
	}
}

// SendErrorSSE sends an error event
func SendErrorSSE(w io.Writer, flusher http.Flusher, msg string) {
	SendSSE(w, flusher, "error", map[string]string{"error": msg})
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// sseRenderer streams presenter output as SSE events, pre-rendering message
// markdown to HTML for the browser.
type sseRenderer struct {
	w       io.Writer
	flusher http.Flusher
}

func (r *sseRenderer) Label(label string) {
	SendSSE(r.w, r.flusher, "label", map[string]string{"label": label})
}

func (r *sseRenderer) Text(text string) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		// Fall back to the raw text; the browser shows it preformatted.
		SendSSE(r.w, r.flusher, "text", map[string]string{"text": text})
		return
	}
	SendSSE(r.w, r.flusher, "text", map[string]string{"text": text, "html": buf.String()})
}

func (r *sseRenderer) Image(data []byte) {
	SendSSE(r.w, r.flusher, "image", map[string]string{
		"dataUri": "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	})
}

func (r *sseRenderer) Completed(elapsed time.Duration) {
	SendSSE(r.w, r.flusher, "completed", map[string]string{
		"message": fmt.Sprintf("Task completed in %.2f s.", elapsed.Seconds()),
	})
}

func (req *SearchRequest) toQuery() (travel.Query, error) {
	departure, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return travel.Query{}, fmt.Errorf("invalid departure date: %w", err)
	}
	ret, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		return travel.Query{}, fmt.Errorf("invalid return date: %w", err)
	}
	if req.Passengers < 1 {
		return travel.Query{}, fmt.Errorf("passenger count must be at least 1")
	}
	cabin, err := travel.ParseCabinClass(req.Cabin)
	if err != nil {
		return travel.Query{}, err
	}
	return travel.Query{
		DepartureDate: departure,
		ReturnDate:    ret,
		From:          req.From,
		To:            req.To,
		Passengers:    req.Passengers,
		Airline:       req.Airline,
		Cabin:         cabin,
	}, nil
}

// HandleSearch handles the /api/search endpoint with SSE streaming. One task
// runs per request; the handler blocks until the runtime's sequence ends.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query, err := req.toQuery()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	// Set up SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	SendSSE(w, flusher, "ping", map[string]string{"status": "connected", "sessionId": req.SessionID})

	appCfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to load app config: %v\n", err)
		appCfg = &config.AppConfig{}
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = appCfg.General.DefaultProvider
	}
	if providerName == "" {
		providerName = "azure_openai"
	}
	modelName := req.Model
	if modelName == "" {
		modelName = appCfg.General.DefaultModel
	}

	creds, err := provider.Resolve(providerName, modelName, appCfg)
	if err != nil {
		SendErrorSSE(w, flusher, err.Error())
		return
	}

	team := h.Teams(magentic.Config{
		BaseURL:     appCfg.RuntimeBaseURL(),
		Credentials: creds,
	})

	SendSSE(w, flusher, "status", map[string]string{
		"status":  "running",
		"message": fmt.Sprintf("Task is submitted with %s model.", creds.Model),
	})

	counters := h.Sessions.GetOrCreate(req.SessionID)
	pres := presenter.New(team, &sseRenderer{w: w, flusher: flusher}, counters)

	if _, err := pres.Present(r.Context(), travel.BuildPrompt(query)); err != nil {
		SendErrorSSE(w, flusher, err.Error())
		return
	}

	promptTokens, completionTokens, elapsed := counters.Snapshot()
	SendSSE(w, flusher, "result", map[string]interface{}{
		"promptTokens":     promptTokens,
		"completionTokens": completionTokens,
		"elapsedSeconds":   elapsed.Seconds(),
	})
	SendSSE(w, flusher, "done", map[string]bool{"done": true})
}

// HandleSessionCounters handles GET /api/session/{id}/counters
func (h *SearchHandler) HandleSessionCounters(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	counters, ok := h.Sessions.Lookup(sessionID)
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"promptTokens": 0, "completionTokens": 0, "elapsedSeconds": 0,
		})
		return
	}
	promptTokens, completionTokens, elapsed := counters.Snapshot()
	json.NewEncoder(w).Encode(map[string]interface{}{
		"promptTokens":     promptTokens,
		"completionTokens": completionTokens,
		"elapsedSeconds":   elapsed.Seconds(),
	})
}

// HandleSessionReset handles POST /api/session/{id}/reset - zeroes counters
func (h *SearchHandler) HandleSessionReset(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	if counters, ok := h.Sessions.Lookup(sessionID); ok {
		counters.Reset()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"reset": true})
}
