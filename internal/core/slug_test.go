package core

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Summer Dress",
			expected: "summer-dress",
		},
		{
			name:     "accented latin folds to ascii",
			input:    "Café Déco Suéter",
			expected: "cafe-deco-sueter",
		},
		{
			name:     "punctuation runs collapse",
			input:    "Wool -- & Silk!! Scarf",
			expected: "wool-silk-scarf",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "  **Limited**  ",
			expected: "limited",
		},
		{
			name:     "digits kept",
			input:    "AirMax 270",
			expected: "airmax-270",
		},
		{
			name:     "empty falls back",
			input:    "",
			expected: SlugFallback,
		},
		{
			name:     "non-latin script falls back",
			input:    "کیف چرمی",
			expected: SlugFallback,
		},
		{
			name:     "mixed script keeps ascii part",
			input:    "چرم Leather Bag",
			expected: "leather-bag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugify_AlwaysSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9-]+$`)
	inputs := []string{
		"", "    ", "!!!", "Ünïcödé Nämé", "日本語", "a", "Ærø",
		"price: $19.99", "emoji 🎉 name",
	}

	for _, input := range inputs {
		got := Slugify(input)
		if got == "" {
			t.Errorf("Slugify(%q) returned empty string", input)
		}
		if !safe.MatchString(got) {
			t.Errorf("Slugify(%q) = %q, contains unsafe characters", input, got)
		}
	}
}

func TestFileNameFor(t *testing.T) {
	got := FileNameFor("summer-dress")
	want := "summer-dress" + CardFileExt
	if got != want {
		t.Errorf("FileNameFor = %q, want %q", got, want)
	}
}

func TestCompactTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Summer Dress", "summerdress"},
		{"eco-friendly", "ecofriendly"},
		{"تابستان", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := compactTag(tt.input); got != tt.expected {
			t.Errorf("compactTag(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
