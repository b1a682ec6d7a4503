package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultLimit},
		{in: -5, want: DefaultLimit},
		{in: 10, want: 10},
		{in: MaxLimit + 1, want: MaxLimit},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.in); got != tc.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCursorRoundTrip(t *testing.T) {
	original := Cursor{
		Timestamp: time.Date(2026, time.March, 4, 10, 30, 0, 123456789, time.UTC),
		ID:        uuid.New(),
	}

	parsed, err := ParseCursor(EncodeCursor(original))
	if err != nil {
		t.Fatalf("ParseCursor failed: %v", err)
	}
	if parsed == nil {
		t.Fatal("expected parsed cursor")
	}
	if !parsed.Timestamp.Equal(original.Timestamp) {
		t.Fatalf("timestamp mismatch: got %s, want %s", parsed.Timestamp, original.Timestamp)
	}
	if parsed.ID != original.ID {
		t.Fatalf("id mismatch: got %s, want %s", parsed.ID, original.ID)
	}
}

func TestParseCursorEmptyMeansFirstPage(t *testing.T) {
	cursor, err := ParseCursor("   ")
	if err != nil {
		t.Fatalf("ParseCursor failed: %v", err)
	}
	if cursor != nil {
		t.Fatal("expected nil cursor for blank input")
	}
}

func TestParseCursorRejectsGarbage(t *testing.T) {
	if _, err := ParseCursor("not-base64!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := ParseCursor("bm8tcGlwZS1oZXJl"); err == nil {
		t.Fatal("expected error for missing separator")
	}
}

func TestTrimPage(t *testing.T) {
	rows := []int{1, 2, 3, 4}

	visible, hasMore := TrimPage(rows, 3)
	if !hasMore {
		t.Fatal("expected a next page when a buffer row is present")
	}
	if len(visible) != 3 {
		t.Fatalf("expected 3 visible rows, got %d", len(visible))
	}

	visible, hasMore = TrimPage(rows, 10)
	if hasMore {
		t.Fatal("did not expect a next page")
	}
	if len(visible) != 4 {
		t.Fatalf("expected all rows, got %d", len(visible))
	}
}
