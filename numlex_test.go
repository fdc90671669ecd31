package numlex

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Error, "ERR"},
		{Int, "INT"},
		{Dec, "DEC"},
		{Kind(42), "ERR"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestToken(t *testing.T) {
	input := "n=0x1f;"
	tok := Token{Kind: Int, Start: 2, Len: 4}

	if got := tok.End(); got != 6 {
		t.Errorf("End() = %d, want 6", got)
	}
	if got := tok.Text(input); got != "0x1f" {
		t.Errorf("Text() = %q, want %q", got, "0x1f")
	}
	if got := tok.String(); got != "INT[2:6]" {
		t.Errorf("String() = %q, want %q", got, "INT[2:6]")
	}

	// The zero Token is an empty match at offset 0.
	var zero Token
	if zero.Kind != Error || zero.Text("") != "" || zero.String() != "ERR[0:0]" {
		t.Errorf("zero Token = %v", zero)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		want  string
	}{
		{"int", "100", 0, "INT100"},
		{"hex", "0xabc", 0, "INT0xabc"},
		{"dec", "10.3", 0, "DEC10.3"},
		{"leading dot", ".12", 0, "DEC.12"},
		{"error", ".", 0, "ERR"},
		{"empty", "", 0, "ERR"},
		{"trailing text dropped", "7 days", 0, "INT7"},
		{"offset", "ab 0.5", 3, "DEC0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := ScanString(tt.input, tt.start)
			if got := Format(tok, tt.input); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}

			buf := []byte("> ")
			got := AppendFormat(buf, tok, []byte(tt.input))
			if string(got) != "> "+tt.want {
				t.Errorf("AppendFormat() = %q, want %q", got, "> "+tt.want)
			}
		})
	}
}
