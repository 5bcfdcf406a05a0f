package appliance

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// PlaceholderName is stored in place of an empty appliance name.
const PlaceholderName = "Unknown Appliance"

// Column widths of the fixed-width record line.
const (
	NameWidth  = 20
	PowerWidth = 10
	HoursWidth = 10
)

// Field identifiers used in errors and log fields.
const (
	FieldName        = "name"
	FieldPowerRating = "power_rating"
	FieldDailyHours  = "daily_hours"
)

// Clamp warnings, returned when a setter replaces an invalid value with 0.
const (
	PowerWarning = "Warning: Power rating must be greater than 0. Set to 0 temporarily."
	HoursWarning = "Warning: Daily hours must be between 0 and 24. Set to 0 temporarily."
)

// Appliance is a named electrical device with its power rating and daily usage.
//
// The zero value is an appliance with an empty name and both numeric fields at 0.
// Every value produced by New or the setters satisfies PowerRating() >= 0 and
// 0 <= DailyHours() <= MaxDailyHours.
type Appliance struct {
	name        string
	powerRating float64 // watts
	dailyHours  float64 // hours used per day
}

// New creates an appliance, applying the same normalization as the setters.
// Any clamp warnings produced along the way are returned in field order.
func New(name string, powerRating, dailyHours float64) (Appliance, []error) {
	var a Appliance
	var warnings []error

	a.SetName(name)
	if err := a.SetPowerRating(powerRating); err != nil {
		warnings = append(warnings, err)
	}
	if err := a.SetDailyHours(dailyHours); err != nil {
		warnings = append(warnings, err)
	}

	return a, warnings
}

// SetName stores n, or PlaceholderName when n is empty. It never warns.
func (a *Appliance) SetName(n string) {
	if n != "" {
		a.name = n
	} else {
		a.name = PlaceholderName
	}
}

// SetPowerRating stores p when it is a valid rating. Otherwise the rating is
// set to 0 and an out-of-range error carrying PowerWarning is returned.
func (a *Appliance) SetPowerRating(p float64) error {
	if ValidatePowerRating(p) == nil {
		a.powerRating = p
		return nil
	}
	a.powerRating = 0
	return NewOutOfRangeError(FieldPowerRating, PowerWarning)
}

// SetDailyHours stores h when it lies in [0, MaxDailyHours]. Otherwise the
// hours are set to 0 and an out-of-range error carrying HoursWarning is returned.
func (a *Appliance) SetDailyHours(h float64) error {
	if ValidateDailyHours(h) == nil {
		a.dailyHours = h
		return nil
	}
	a.dailyHours = 0
	return NewOutOfRangeError(FieldDailyHours, HoursWarning)
}

// Name returns the appliance name
func (a Appliance) Name() string { return a.name }

// PowerRating returns the power rating in watts
func (a Appliance) PowerRating() float64 { return a.powerRating }

// DailyHours returns the daily usage in hours
func (a Appliance) DailyHours() float64 { return a.dailyHours }

// Display returns the fixed-width record line, without a trailing newline:
// name left-aligned in NameWidth cells, power as a whole number of watts and
// hours with one decimal, both right-aligned.
func (a Appliance) Display() string {
	return fmt.Sprintf("%s%*.0f W%*.1f hrs/day",
		runewidth.FillRight(a.name, NameWidth),
		PowerWidth, a.powerRating,
		HoursWidth, a.dailyHours)
}

// String implements fmt.Stringer
func (a Appliance) String() string {
	return a.Display()
}
