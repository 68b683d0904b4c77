package domain

import "testing"

func TestIsLogoFile(t *testing.T) {
	tests := map[string]bool{
		"0b7c.png":      true,
		"0b7c.JPG":      true,
		"0b7c.webp":     true,
		"0b7c":          false,
		"0b7c.html":     false,
		"0b7c.svg":      false,
		"dir/0b7c.gif":  true,
		"0b7c.png.html": false,
	}
	for name, want := range tests {
		if got := IsLogoFile(name); got != want {
			t.Errorf("IsLogoFile(%q) = %v, want %v", name, got, want)
		}
	}
}
