package booking

import (
	"errors"
	"testing"
	"time"
)

var testLoc = time.FixedZone("IST", 5*3600+30*60)

func TestSlotTimes_FullDayCoverage(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, testLoc)

	slots, err := SlotTimes(date, "09:00", "21:00", testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 48 {
		t.Fatalf("expected 48 slots, got %d", len(slots))
	}

	first := slots[0]
	if first.Hour() != 9 || first.Minute() != 0 {
		t.Fatalf("expected first slot at 09:00, got %s", first.Format("15:04"))
	}

	last := slots[len(slots)-1]
	if last.Hour() != 20 || last.Minute() != 45 {
		t.Fatalf("expected last slot at 20:45, got %s", last.Format("15:04"))
	}

	for i := 1; i < len(slots); i++ {
		if got := slots[i].Sub(slots[i-1]); got != SlotMinutes*time.Minute {
			t.Fatalf("slot %d not %d minutes after previous: %v", i, SlotMinutes, got)
		}
	}
}

func TestSlotTimes_ClosingExclusive(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, testLoc)

	slots, err := SlotTimes(date, "10:00", "10:30", testLoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[1].Minute() != 15 {
		t.Fatalf("expected last slot at 10:15, got %s", slots[1].Format("15:04"))
	}
}

func TestSlotTimes_RejectsInvertedHours(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, testLoc)

	if _, err := SlotTimes(date, "21:00", "09:00", testLoc); !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours, got %v", err)
	}
	if _, err := SlotTimes(date, "09:00", "09:00", testLoc); !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours for equal hours, got %v", err)
	}
}

func TestSlotTimes_RejectsMalformedHours(t *testing.T) {
	date := time.Date(2025, 9, 15, 0, 0, 0, 0, testLoc)

	if _, err := SlotTimes(date, "9am", "21:00", testLoc); err == nil {
		t.Fatal("expected error for malformed opening time")
	}
}

func TestWithinHours(t *testing.T) {
	cases := []struct {
		hour, min int
		want      bool
	}{
		{8, 45, false},
		{9, 0, true},
		{14, 30, true},
		{20, 45, true},
		{21, 0, false},
		{23, 0, false},
	}

	for _, tc := range cases {
		start := time.Date(2025, 9, 15, tc.hour, tc.min, 0, 0, testLoc)
		if got := WithinHours(start, "09:00", "21:00"); got != tc.want {
			t.Errorf("WithinHours(%02d:%02d) = %v, want %v", tc.hour, tc.min, got, tc.want)
		}
	}
}

func TestOnSlotGrid(t *testing.T) {
	cases := []struct {
		hour, min, sec int
		want           bool
	}{
		{9, 0, 0, true},
		{9, 15, 0, true},
		{10, 7, 0, false},
		{10, 30, 30, false},
		{8, 45, 0, false}, // before opening
	}

	for _, tc := range cases {
		start := time.Date(2025, 9, 15, tc.hour, tc.min, tc.sec, 0, testLoc)
		if got := OnSlotGrid(start, "09:00"); got != tc.want {
			t.Errorf("OnSlotGrid(%02d:%02d:%02d) = %v, want %v", tc.hour, tc.min, tc.sec, got, tc.want)
		}
	}
}

func TestOnSlotGrid_OffsetOpening(t *testing.T) {
	// Opening at 09:10 shifts the whole grid.
	start := time.Date(2025, 9, 15, 9, 25, 0, 0, testLoc)
	if !OnSlotGrid(start, "09:10") {
		t.Fatal("expected 09:25 on grid for opening 09:10")
	}

	start = time.Date(2025, 9, 15, 9, 30, 0, 0, testLoc)
	if OnSlotGrid(start, "09:10") {
		t.Fatal("expected 09:30 off grid for opening 09:10")
	}
}
