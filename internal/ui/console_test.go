package ui

import (
	"strings"
	"testing"
)

func TestFormatMessage_NoColors(t *testing.T) {
	console := &Console{useColors: false}

	if got := console.formatMessage(StyleError, "failed"); got != "failed" {
		t.Errorf("expected plain message, got %q", got)
	}
}

func TestFormatMessage_WithColors(t *testing.T) {
	console := &Console{useColors: true}

	tests := []struct {
		style ConsoleStyle
		color string
	}{
		{StyleError, colorRed},
		{StyleWarning, colorYellow},
		{StyleSuccess, colorGreen},
		{StyleInfo, colorBlue},
		{StyleStep, colorCyan},
	}

	for _, tt := range tests {
		got := console.formatMessage(tt.style, "msg")
		if !strings.HasPrefix(got, tt.color) {
			t.Errorf("style %d: expected prefix %q, got %q", tt.style, tt.color, got)
		}
		if !strings.HasSuffix(got, colorReset) {
			t.Errorf("style %d: expected reset suffix, got %q", tt.style, got)
		}
	}

	if got := console.formatMessage(StyleNormal, "msg"); got != "msg" {
		t.Errorf("normal style must not be colored, got %q", got)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	console := NewConsole()

	got := console.FormatErrorMessage("pulling image", "registry said 404", "verify the tag")
	want := "pulling image\nCause: registry said 404\nSuggestion: verify the tag"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := console.FormatErrorMessage("only context", "", ""); got != "only context" {
		t.Errorf("expected %q, got %q", "only context", got)
	}
}
