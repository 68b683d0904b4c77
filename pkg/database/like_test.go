package database

import "testing"

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mouse", "%mouse%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`C:\tmp`, `%C:\\tmp%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		if got := ContainsPattern(tt.in); got != tt.want {
			t.Errorf("ContainsPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
