package export

import (
	"strings"
	"testing"
)

func TestMarshalCSV(t *testing.T) {
	data := string(MarshalCSV(
		[]string{"a", "b"},
		[][]string{{"1", "2"}, {"3", "4"}},
	))
	if !strings.HasPrefix(data, "\ufeff") {
		t.Error("output must start with a UTF-8 BOM")
	}
	want := "\ufeffa,b\n1,2\n3,4\n"
	if data != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"صيانة دورية", "صيانة دورية"},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line\nbreak", "\"line\nbreak\""},
	}
	for _, tt := range tests {
		if got := escape(tt.input); got != tt.want {
			t.Errorf("escape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
