package chat

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how user input is framed before it is sent.
type Mode string

const (
	ModeChat  Mode = "chat"
	ModeDebug Mode = "debug"
	ModeRoast Mode = "roast"
)

// ErrEmptyInput is returned by BuildPrompt for blank input.
var ErrEmptyInput = errors.New("input is empty")

// ParseMode converts s into a Mode. The empty string means ModeChat.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeChat, nil
	case ModeChat, ModeDebug, ModeRoast:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (valid: chat, debug, roast)", s)
	}
}

// BuildPrompt frames input for the given mode. The roast prompt names the
// persona so the reply matches the selected style.
func BuildPrompt(mode Mode, personaName, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}
	switch mode {
	case ModeChat, "":
		return input, nil
	case ModeDebug:
		return "Debug this code thoroughly and find all possible issues:\n\n" + input, nil
	case ModeRoast:
		return fmt.Sprintf("Roast this code in the style of %s:\n\n%s", personaName, input), nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}
