package snippet

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "case and whitespace collapse",
			in:   []string{"Python", " python ", "PYTHON"},
			want: []string{"python"},
		},
		{
			name: "empties dropped",
			in:   []string{"", "  ", "go"},
			want: []string{"go"},
		},
		{
			name: "insertion order preserved",
			in:   []string{"cli", "go", "cli"},
			want: []string{"cli", "go"},
		},
		{
			name: "nil input",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	once := NormalizeTags([]string{" Go ", "CLI", "go"})
	twice := NormalizeTags(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization not idempotent: %v != %v", once, twice)
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags("Go, CLI ,,go")
	want := []string{"go", "cli"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTags = %v, want %v", got, want)
	}

	if tags := ParseTags(""); tags != nil {
		t.Errorf("ParseTags(\"\") = %v, want nil", tags)
	}
}

func TestValidate(t *testing.T) {
	s := &Snippet{Content: "   \n\t"}
	if err := s.Validate(); err != ErrEmptyContent {
		t.Errorf("Validate() = %v, want ErrEmptyContent", err)
	}

	s.Content = "echo hi"
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestHasTag(t *testing.T) {
	s := &Snippet{Tags: []string{"go", "cli"}}
	if !s.HasTag(" GO ") {
		t.Error("HasTag should match case-insensitively")
	}
	if s.HasTag("python") {
		t.Error("HasTag matched a missing tag")
	}
}

func TestTitleFromContent(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"# Hello World\n\nbody", "Hello World"},
		{"\n\nplain first line\nsecond", "plain first line"},
		{"", ""},
		{"## Nested heading", "Nested heading"},
	}

	for _, tt := range tests {
		if got := TitleFromContent(tt.content); got != tt.want {
			t.Errorf("TitleFromContent(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}
