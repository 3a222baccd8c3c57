package moodengine

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label  string
		want   Category
		wantOK bool
	}{
		{label: "amazing", want: Amazing, wantOK: true},
		{label: "  Low\t", want: Low, wantOK: true},
		{label: "OKAY", want: Okay, wantOK: true},
		{label: "Focused", wantOK: false},
		{label: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.label)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range DisplayOrder {
		if !c.Valid() {
			t.Errorf("%q.Valid() = false", c)
		}
		if got, ok := CategoryForValue(c.Value()); !ok || got != c {
			t.Errorf("CategoryForValue(%d) = %q, %v; want %q", c.Value(), got, ok, c)
		}
	}
	for _, c := range []Category{"", "Amazing", "meh"} {
		if c.Valid() {
			t.Errorf("%q.Valid() = true, want false", c)
		}
	}
}
