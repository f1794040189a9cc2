package chat

import "github.com/GayathriPCh/LoLCode-AI/internal/llm"

// Request is the body of POST /api/chat.
type Request struct {
	Messages []llm.Message `json:"messages"`
	Persona  string        `json:"persona"`
}

// Response is the body returned by POST /api/chat. It always carries exactly
// one choice, independent of the provider's native response shape.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Choice holds one generated message.
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// ChoiceMessage is the content of a generated message.
type ChoiceMessage struct {
	Content string `json:"content"`
}

// NewResponse wraps content in the single-choice response shape.
func NewResponse(content string) *Response {
	return &Response{Choices: []Choice{{Message: ChoiceMessage{Content: content}}}}
}

// Content returns the text of the first choice, or the empty string.
func (r *Response) Content() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}
