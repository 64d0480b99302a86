package booking

import (
	"errors"
	"time"
)

// SlotMinutes is the fixed booking granularity.
const SlotMinutes = 15

var ErrInvalidHours = errors.New("opening time must be before closing time")

func parseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SlotTimes returns every slot-aligned start instant on the given date, from
// opening (inclusive) to closing (exclusive), stepped by SlotMinutes.
//
// Each slot is built from its naive wall-clock minute of day and then
// localized via time.Date, so a DST transition never shifts a slot away from
// its wall-clock label.
func SlotTimes(date time.Time, openingHM, closingHM string, loc *time.Location) ([]time.Time, error) {
	openMin, err := parseHM(openingHM)
	if err != nil {
		return nil, err
	}
	closeMin, err := parseHM(closingHM)
	if err != nil {
		return nil, err
	}
	if closeMin <= openMin {
		return nil, ErrInvalidHours
	}

	var slots []time.Time
	for m := openMin; m < closeMin; m += SlotMinutes {
		slots = append(slots, time.Date(
			date.Year(), date.Month(), date.Day(),
			0, m, 0, 0,
			loc,
		))
	}

	return slots, nil
}

// WithinHours reports whether start lies in [opening, closing) on its own day.
func WithinHours(start time.Time, openingHM, closingHM string) bool {
	openMin, err := parseHM(openingHM)
	if err != nil {
		return false
	}
	closeMin, err := parseHM(closingHM)
	if err != nil {
		return false
	}

	m := start.Hour()*60 + start.Minute()
	return m >= openMin && m < closeMin
}

// OnSlotGrid reports whether start falls exactly on a slot boundary counted
// from the salon's opening time.
func OnSlotGrid(start time.Time, openingHM string) bool {
	if start.Second() != 0 || start.Nanosecond() != 0 {
		return false
	}

	openMin, err := parseHM(openingHM)
	if err != nil {
		return false
	}

	m := start.Hour()*60 + start.Minute()
	diff := m - openMin
	return diff >= 0 && diff%SlotMinutes == 0
}
