package domain

import (
	"slices"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "case preserved", input: "Dark Mode", want: "Dark Mode"},
		{name: "compress multiple spaces", input: "dark   mode", want: "dark mode"},
		{name: "tabs and newlines", input: "\t dark\n mode \t", want: "dark mode"},
		{name: "diacritics preserved", input: "Café", want: "Café"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s, sub string
		want   bool
	}{
		{"Implement Dark Mode", "dark", true},
		{"Implement Dark Mode", "DARK MODE", true},
		{"Implement Dark Mode", "light", false},
		{"anything", "", true},
		{"", "x", false},
		{"Éclair au café", "ÉCLAIR", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.s+"/"+tt.sub, func(t *testing.T) {
			t.Parallel()
			if got := ContainsFold(tt.s, tt.sub); got != tt.want {
				t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.sub, got, tt.want)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	got := NormalizeTags([]string{" ux ", "theme", "", "  ", "ux", "theme ", "dark  mode"})
	want := []string{"ux", "theme", "dark mode"}
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeTags = %v, want %v", got, want)
	}

	if got := NormalizeTags(nil); got == nil || len(got) != 0 {
		t.Errorf("NormalizeTags(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestBoardTemplates(t *testing.T) {
	t.Parallel()

	tpls := BoardTemplates()
	if len(tpls) != 6 {
		t.Fatalf("expected 6 templates, got %d", len(tpls))
	}
	tpls[0].Categories[0].Name = "mutated"

	blank, ok := FindBoardTemplate("blank")
	if !ok {
		t.Fatal("blank template missing")
	}
	if blank.Categories[0].Name != "General" {
		t.Error("BoardTemplates must return copies")
	}
	swot, ok := FindBoardTemplate("swot")
	if !ok || len(swot.Categories) != 4 || swot.Layout != "grid-2x2" {
		t.Errorf("unexpected swot template: %+v", swot)
	}
	if _, ok := FindBoardTemplate("kanban"); ok {
		t.Error("unknown template should not be found")
	}
}
