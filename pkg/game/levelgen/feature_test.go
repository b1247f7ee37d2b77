package levelgen

import (
	"testing"
)

func TestParseFeatureKind(t *testing.T) {
	for _, k := range AllFeatureKinds() {
		t.Run(k.String(), func(t *testing.T) {
			got, err := ParseFeatureKind("  " + k.String() + " ")
			if err != nil || got != k {
				t.Errorf("ParseFeatureKind(%q) = %v, %v, want %v", k.String(), got, err, k)
			}
		})
	}
	if got, err := ParseFeatureKind("TRAP"); err != nil || got != Trap {
		t.Errorf("ParseFeatureKind(\"TRAP\") = %v, %v, want trap", got, err)
	}
	if _, err := ParseFeatureKind("dragon"); err == nil {
		t.Error("ParseFeatureKind(\"dragon\") err = nil, want error")
	}
}

func TestFeatureKind_Text(t *testing.T) {
	var k FeatureKind
	if err := k.UnmarshalText([]byte("key")); err != nil || k != Key {
		t.Errorf("UnmarshalText(\"key\") = %v, %v, want key", k, err)
	}
	text, err := Exit.MarshalText()
	if err != nil || string(text) != "exit" {
		t.Errorf("Exit.MarshalText() = %q, %v, want \"exit\"", text, err)
	}
	if _, err := FeatureKind(42).MarshalText(); err == nil {
		t.Error("FeatureKind(42).MarshalText() err = nil, want error")
	}
}

func TestFeatureRequest_MaxAttempts(t *testing.T) {
	tests := []struct {
		req  FeatureRequest
		want int
	}{
		{FeatureRequest{Quota: 5, AttemptMultiplier: 10}, 50},
		{FeatureRequest{Quota: 0, AttemptMultiplier: 10}, 0},
		{FeatureRequest{Quota: 3, AttemptMultiplier: -1}, 0},
	}
	for _, tt := range tests {
		if got := tt.req.MaxAttempts(); got != tt.want {
			t.Errorf("%+v.MaxAttempts() = %d, want %d", tt.req, got, tt.want)
		}
	}
}
