package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: ""},
		{name: "Local returns local", timezone: "Local"},
		{name: "valid timezone UTC", timezone: "UTC"},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*60*60)
	base := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		loc  *time.Location
		want bool
	}{
		{name: "same instant", a: base, b: base, loc: time.UTC, want: true},
		{name: "same day different hours", a: base, b: base.Add(-23 * time.Hour), loc: time.UTC, want: true},
		{name: "next day", a: base, b: base.Add(time.Hour), loc: time.UTC, want: false},
		{name: "a few minutes apart across midnight", a: base.Add(29 * time.Minute), b: base.Add(31 * time.Minute), loc: time.UTC, want: false},
		{name: "more than 24h apart", a: base, b: base.Add(48 * time.Hour), loc: time.UTC, want: false},
		{name: "same UTC day differs locally", a: base, b: base.Add(-20 * time.Hour), loc: east, want: false},
		{name: "same month different year", a: base, b: base.AddDate(1, 0, 0), loc: time.UTC, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b, tt.loc); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatAndParseISO(t *testing.T) {
	ts := time.Date(2024, 3, 1, 8, 15, 0, 123_000_000, time.FixedZone("X", 3600))

	got := FormatISO(ts)
	if got != "2024-03-01T07:15:00.123Z" {
		t.Fatalf("FormatISO() = %q", got)
	}

	parsed, err := ParseISO(got)
	if err != nil {
		t.Fatalf("ParseISO() error = %v", err)
	}
	if !parsed.Equal(ts) {
		t.Errorf("ParseISO() = %v, want %v", parsed, ts)
	}

	if _, err := ParseISO("2024-03-01T07:15:00+02:00"); err != nil {
		t.Errorf("ParseISO() should accept RFC 3339: %v", err)
	}
	if _, err := ParseISO("yesterday"); err == nil {
		t.Error("ParseISO() should reject garbage")
	}
}

func TestFormatLongDate(t *testing.T) {
	got := FormatLongDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if got != "Friday, March 1, 2024" {
		t.Errorf("FormatLongDate() = %q", got)
	}
}
