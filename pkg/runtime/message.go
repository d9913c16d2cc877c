package runtime

// Kind tags the variant of a streamed message.
type Kind int

const (
	// KindText is ordinary textual progress from one of the agents.
	KindText Kind = iota
	// KindMultiModal carries an embedded image alongside (or instead of) text.
	KindMultiModal
	// KindTaskResult terminates the stream and carries the full transcript.
	KindTaskResult
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMultiModal:
		return "multimodal"
	case KindTaskResult:
		return "task_result"
	default:
		return "unknown"
	}
}

// SourceUser is the source identifier the runtime assigns to the submitted
// task itself. Usage attached to user messages is never counted.
const SourceUser = "user"

// Usage is the per-message token accounting reported by the runtime.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Message is one unit of streamed output from the runtime. It is read-only on
// this side of the boundary.
type Message struct {
	// Source is the free-form role name of the producing agent.
	Source string
	Kind   Kind
	// Content is the textual payload, or the final answer for a task result.
	Content string
	// Image holds decoded image bytes for multimodal messages.
	Image []byte
	// Usage is present when the runtime attached token accounting.
	Usage *Usage
	// Transcript is the task's complete ordered message list; set only on
	// task-result messages.
	Transcript []Message
	// StopReason explains why the run ended, when the runtime reports one.
	StopReason string
}

// IsFinal reports whether m terminates the stream.
func (m Message) IsFinal() bool {
	return m.Kind == KindTaskResult
}
