package magentic

import (
	"encoding/base64"
	"fmt"

	"github.com/farescout/farescout/pkg/runtime"
)

// wireMessage is the JSON frame format of the orchestrator's stream endpoint.
type wireMessage struct {
	Type       string         `json:"type"`
	Source     string         `json:"source"`
	Content    string         `json:"content,omitempty"`
	Image      string         `json:"image,omitempty"` // base64 png
	Usage      *runtime.Usage `json:"usage,omitempty"`
	Messages   []wireMessage  `json:"messages,omitempty"` // task_result only
	StopReason string         `json:"stop_reason,omitempty"`
}

func (w wireMessage) toMessage() (runtime.Message, error) {
	msg := runtime.Message{
		Source:     w.Source,
		Content:    w.Content,
		Usage:      w.Usage,
		StopReason: w.StopReason,
	}

	switch w.Type {
	case "text":
		msg.Kind = runtime.KindText
	case "multimodal":
		msg.Kind = runtime.KindMultiModal
		if w.Image != "" {
			data, err := base64.StdEncoding.DecodeString(w.Image)
			if err != nil {
				return runtime.Message{}, fmt.Errorf("invalid image payload from %s: %w", w.Source, err)
			}
			msg.Image = data
		}
	case "task_result":
		msg.Kind = runtime.KindTaskResult
		for _, inner := range w.Messages {
			m, err := inner.toMessage()
			if err != nil {
				return runtime.Message{}, err
			}
			msg.Transcript = append(msg.Transcript, m)
		}
	default:
		return runtime.Message{}, fmt.Errorf("unknown message type: %s", w.Type)
	}

	return msg, nil
}
