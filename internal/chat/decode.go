package chat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GayathriPCh/LoLCode-AI/internal/llm"
)

// wireRequest mirrors Request with pointer fields so that absent values can
// be told apart from empty ones.
type wireRequest struct {
	Messages *[]wireMessage `json:"messages"`
	Persona  string         `json:"persona"`
}

type wireMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// DecodeRequest parses and validates a chat request body.
func DecodeRequest(r io.Reader) (Request, error) {
	var wire wireRequest
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return Request{}, fmt.Errorf("%w: decoding body: %v", ErrInvalidRequest, err)
	}
	if wire.Messages == nil {
		return Request{}, fmt.Errorf("%w: messages is required", ErrInvalidRequest)
	}

	req := Request{
		Messages: make([]llm.Message, 0, len(*wire.Messages)),
		Persona:  wire.Persona,
	}
	for i, m := range *wire.Messages {
		if m.Content == nil {
			return Request{}, fmt.Errorf("%w: messages[%d].content is required", ErrInvalidRequest, i)
		}
		req.Messages = append(req.Messages, llm.Message{Role: llm.Role(m.Role), Content: *m.Content})
	}

	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate checks every message role against the closed role set.
func (r Request) Validate() error {
	for i, m := range r.Messages {
		if !m.Role.Valid() {
			return fmt.Errorf("%w: messages[%d].role %q must be one of system, user, assistant", ErrInvalidRequest, i, m.Role)
		}
	}
	return nil
}
