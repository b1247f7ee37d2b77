// Package input turns typed lines into preview-loop actions.
package input

import (
	"bufio"
	"io"
	"strings"
)

// Action is what the user asked the preview loop to do
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionDump
	ActionQuit
	ActionUnknown
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionRegenerate:
		return "regenerate"
	case ActionDump:
		return "dump"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

var bindings = map[string]Action{
	"r":          ActionRegenerate,
	"regenerate": ActionRegenerate,
	"n":          ActionRegenerate,
	"d":          ActionDump,
	"dump":       ActionDump,
	"q":          ActionQuit,
	"quit":       ActionQuit,
	"exit":       ActionQuit,
}

// ParseAction maps one line of input to an action. Blank lines are ActionNone.
func ParseAction(line string) Action {
	cmd := strings.ToLower(strings.TrimSpace(line))
	if cmd == "" {
		return ActionNone
	}
	if a, ok := bindings[cmd]; ok {
		return a
	}
	return ActionUnknown
}

// Reader reads actions line by line
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a reader over r, usually os.Stdin
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next reads the next line and returns its action. End of input reads as
// ActionQuit so a closed stdin ends the loop.
func (r *Reader) Next() (Action, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if strings.TrimSpace(line) == "" {
				return ActionQuit, nil
			}
			return ParseAction(line), nil
		}
		return ActionNone, err
	}
	return ParseAction(strings.TrimRight(line, "\r\n")), nil
}
