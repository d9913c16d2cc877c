// Package presenter drives one fare-runtime task and renders its message
// stream incrementally, accumulating session token counters along the way.
package presenter

import (
	"context"
	"time"

	"github.com/farescout/farescout/pkg/runtime"
)

// Renderer receives the formatted view of each streamed message. The web SSE
// sink and the console sink both implement it.
type Renderer interface {
	// Label introduces the block for one message's source.
	Label(label string)
	// Text renders a textual payload verbatim (markdown allowed).
	Text(text string)
	// Image renders decoded image bytes.
	Image(data []byte)
	// Completed renders the end-of-task line.
	Completed(elapsed time.Duration)
}

// DisplayLabel converts a runtime source identifier into its fixed display
// label. Unknown sources render as the generic execution label.
func DisplayLabel(source string) string {
	switch source {
	case runtime.SourceUser:
		return "👤 User"
	case "MagenticOneOrchestrator":
		return "🤖 MagenticOneOrchestrator"
	case "WebSurfer":
		return "🌐 WebSurfer"
	case "FileSurfer":
		return "📁 FileSurfer"
	case "Coder":
		return "💻 Coder"
	default:
		return "💻 Terminal"
	}
}

// Presenter consumes one task's message stream from the runtime and renders
// it. Counters are shared across tasks within a session.
type Presenter struct {
	team     runtime.Team
	renderer Renderer
	counters *SessionCounters
}

func New(team runtime.Team, renderer Renderer, counters *SessionCounters) *Presenter {
	return &Presenter{
		team:     team,
		renderer: renderer,
		counters: counters,
	}
}

// Present submits the prompt and renders the resulting stream in arrival
// order. It returns the full collected message list once the runtime signals
// completion. Stream errors abort and propagate; whatever was rendered before
// the fault stays rendered.
func (p *Presenter) Present(ctx context.Context, prompt string) ([]runtime.Message, error) {
	start := time.Now()

	var results []runtime.Message
	for msg, err := range p.team.RunStream(ctx, prompt) {
		if err != nil {
			return results, err
		}

		if msg.IsFinal() {
			p.renderer.Completed(time.Since(start))
		} else {
			p.renderer.Label(DisplayLabel(msg.Source))
			switch msg.Kind {
			case runtime.KindMultiModal:
				p.renderer.Image(msg.Image)
			default:
				p.renderer.Text(msg.Content)
			}
		}
		results = append(results, msg)
	}

	elapsed := time.Since(start)
	p.counters.SetElapsed(elapsed)
	p.accumulateUsage(results)
	return results, nil
}

// accumulateUsage walks the complete collected list and folds every
// transcript message's usage into the session counters, skipping the user's
// own input. Scanning the whole list (rather than only the trailing result)
// mirrors how completions have always been accounted here.
func (p *Presenter) accumulateUsage(results []runtime.Message) {
	for _, res := range results {
		if res.Kind != runtime.KindTaskResult {
			continue
		}
		for _, msg := range res.Transcript {
			if msg.Source == runtime.SourceUser {
				continue
			}
			if msg.Usage != nil {
				p.counters.Add(msg.Usage.PromptTokens, msg.Usage.CompletionTokens)
			}
		}
	}
}
