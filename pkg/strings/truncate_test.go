package strings

import (
	"testing"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short description unchanged",
			input:    "Bans a player",
			maxLen:   20,
			expected: "Bans a player",
		},
		{
			name:     "exact length unchanged",
			input:    "hello",
			maxLen:   5,
			expected: "hello",
		},
		{
			name:     "long description truncated with ellipsis",
			input:    "Temporarily bans a player from the server",
			maxLen:   15,
			expected: "Temporarily ...",
		},
		{
			name:     "newlines flattened to spaces",
			input:    "Bans a player.\nRequires moderator permission.",
			maxLen:   60,
			expected: "Bans a player. Requires moderator permission.",
		},
		{
			name:     "runs of whitespace collapsed",
			input:    "hello \t\t  world\r\n again",
			maxLen:   30,
			expected: "hello world again",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  hello world  ",
			maxLen:   20,
			expected: "hello world",
		},
		{
			name:     "multi-byte runes never split",
			input:    "\u65e5\u672c\u8a9e\u30c6\u30b9\u30c8\u6587\u5b57\u5217",
			maxLen:   6,
			expected: "\u65e5\u672c\u8a9e...",
		},
		{
			name:     "empty string",
			input:    "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "whitespace only becomes empty",
			input:    "   \n\t  ",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "maxLen below minimum clamped",
			input:    "hello",
			maxLen:   2,
			expected: "h...",
		},
		{
			name:     "negative maxLen clamped",
			input:    "hello",
			maxLen:   -5,
			expected: "h...",
		},
		{
			name:     "maxLen exactly at minimum",
			input:    "hello",
			maxLen:   MinTruncateLen,
			expected: "h...",
		},
		{
			name:     "short input survives small maxLen",
			input:    "hi",
			maxLen:   3,
			expected: "hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateDescription(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("TruncateDescription(%q, %d) = %q, want %q",
					tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestTruncateDescriptionRuneLength(t *testing.T) {
	input := "\u65e5\u672c\u8a9e\u30c6\u30b9\u30c8" // 6 runes, 18 bytes in UTF-8
	result := TruncateDescription(input, 5)

	expected := "\u65e5\u672c..."
	if result != expected {
		t.Errorf("Expected %q but got %q", expected, result)
	}

	runeCount := 0
	for range result {
		runeCount++
	}
	if runeCount != 5 {
		t.Errorf("Expected 5 runes but got %d", runeCount)
	}
}
