package httperr

import "errors"

// Business failure codes shared between use cases and handlers.
const (
	CodeSalonNotFound    = "salon_not_found"
	CodeSalonClosed      = "salon_closed"
	CodeSlotFull         = "slot_full"
	CodeOffSlotGrid      = "off_slot_grid"
	CodeOutsideHours     = "outside_opening_hours"
	CodeScheduleNotFound = "schedule_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
