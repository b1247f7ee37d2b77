package input

import (
	"strings"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"r", ActionRegenerate},
		{"  Regenerate ", ActionRegenerate},
		{"d", ActionDump},
		{"Q", ActionQuit},
		{"", ActionNone},
		{"   ", ActionNone},
		{"fly", ActionUnknown},
	}
	for _, tt := range tests {
		if got := ParseAction(tt.in); got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReader_Next(t *testing.T) {
	r := NewReader(strings.NewReader("r\r\nd\n\nq"))
	want := []Action{ActionRegenerate, ActionDump, ActionNone, ActionQuit, ActionQuit}
	for i, w := range want {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next() #%d err = %v", i, err)
		}
		if got != w {
			t.Errorf("Next() #%d = %v, want %v", i, got, w)
		}
	}
}
