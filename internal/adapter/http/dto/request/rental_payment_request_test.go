package request

import (
	"errors"
	"testing"
	"time"
)

func TestMarkPaidRequest_ResolvePaidAt(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := MarkPaidRequest{PaidAt: "2024-03-01T10:30:00-03:00"}.ResolvePaidAt()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 1, 13, 30, 0, 0, time.UTC)
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("date only", func(t *testing.T) {
		got, err := MarkPaidRequest{PaidAt: " 2024-03-01 "}.ResolvePaidAt()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected date: %v", got)
		}
	})

	for _, raw := range []string{"", "   ", "01/03/2024", "yesterday"} {
		if _, err := (MarkPaidRequest{PaidAt: raw}).ResolvePaidAt(); !errors.Is(err, ErrInvalidPaidAt) {
			t.Fatalf("expected ErrInvalidPaidAt for %q, got %v", raw, err)
		}
	}
}
