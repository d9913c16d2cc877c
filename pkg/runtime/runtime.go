// Package runtime defines the boundary to the externally hosted multi-agent
// fare runtime. The orchestration itself (web browsing, code execution, agent
// coordination) lives behind this boundary; locally we only consume its
// ordered stream of progress messages.
package runtime

import (
	"context"
	"iter"
)

// Team is one capability of the external runtime: submit a natural-language
// task and receive an ordered, finite, non-restartable sequence of messages,
// terminated by a single task-result message. Each element is consumed exactly
// once; the sequence ends when the runtime signals completion.
type Team interface {
	RunStream(ctx context.Context, task string) iter.Seq2[Message, error]
}
