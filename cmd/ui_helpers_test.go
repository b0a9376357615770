// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"github.com/pterm/pterm"

	"learndash/admincli/internal/config"
)

func TestApplyTerminalPrefsDebugLevel(t *testing.T) {
	t.Cleanup(pterm.DisableDebugMessages)

	applyTerminalPrefs(config.Config{ColorOutput: true, LogLevel: "info"})
	if pterm.PrintDebugMessages {
		t.Error("info level must not enable debug output")
	}

	applyTerminalPrefs(config.Config{ColorOutput: true, LogLevel: "debug"})
	if !pterm.PrintDebugMessages {
		t.Error("debug level must enable debug output")
	}
}

func TestTrimNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unix line ending",
			input: "hunter22\n",
			want:  "hunter22",
		},
		{
			name:  "windows line ending",
			input: "hunter22\r\n",
			want:  "hunter22",
		},
		{
			name:  "no line ending",
			input: "hunter22",
			want:  "hunter22",
		},
		{
			name:  "leading and trailing spaces survive",
			input: "  p@ss word  \n",
			want:  "  p@ss word  ",
		},
		{
			name:  "tab inside password survives",
			input: "pa\tss\n",
			want:  "pa\tss",
		},
		{
			name:  "empty line",
			input: "\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimNewline(tt.input); got != tt.want {
				t.Errorf("trimNewline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
