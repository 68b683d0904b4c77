package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSON(t *testing.T) {
	var e struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2025-09-10"}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Date.Year() != 2025 || e.Date.Month() != time.September || e.Date.Day() != 10 {
		t.Fatalf("parsed %v", e.Date.Time)
	}

	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"date":"2025-09-10"}` {
		t.Errorf("marshal = %s", out)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-09-01", "2025-09-01", false},
		{"2025-09-01T23:30:00Z", "2025-09-01", false},
		{"2025-09-01T23:30:00+05:00", "2025-09-01", false},
		{"09/01/2025", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate_Scan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2025-09-05" {
		t.Errorf("scan time = %s", d)
	}

	if err := d.Scan([]byte("2024-02-29")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("scan bytes = %s", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("scan int: want error")
	}

	v, err := NewDate(2025, time.September, 1).Value()
	if err != nil || v != "2025-09-01" {
		t.Errorf("Value = %v, %v", v, err)
	}
}
