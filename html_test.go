package htmltools

import "testing"

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ampersand", input: "a&b", want: "a&amp;b"},
		{name: "angle brackets", input: "<script>", want: "&lt;script&gt;"},
		{name: "double quote", input: `a"b`, want: "a&#34;b"},
		{name: "plain text untouched", input: "hello-world_1.0", want: "hello-world_1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeString(tt.input); got != tt.want {
				t.Errorf("EscapeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTMLString(t *testing.T) {
	h := HTML(`<meta name="a" content="b"/>`)
	if h.String() != string(h) {
		t.Errorf("String() = %q, want %q", h.String(), string(h))
	}
}
