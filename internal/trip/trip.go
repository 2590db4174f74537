// Package trip contains the core domain types of the planner: the
// preferences a traveller submits, the generated itinerary attached to
// them, and the record store binding the two together.
package trip

import (
	"errors"
	"time"
)

// ErrNotFound is returned when the requested trip does not exist in the
// store. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("trip not found")

// ActivityType categorizes a single itinerary line item.
type ActivityType string

const (
	ActivityAccommodation ActivityType = "accommodation"
	ActivityTransport     ActivityType = "transport"
	ActivityActivity      ActivityType = "activity"
	ActivityMeal          ActivityType = "meal"
)

// KnownActivityType reports whether t is one of the four recognized categories.
func KnownActivityType(t ActivityType) bool {
	switch t {
	case ActivityAccommodation, ActivityTransport, ActivityActivity, ActivityMeal:
		return true
	}
	return false
}

// Preferences is the validated input a traveller submits.
// Budget is in whole rupees per person.
type Preferences struct {
	Destination string   `json:"destination" validate:"required"`
	Budget      int      `json:"budget" validate:"required,min=1000"`
	Duration    int      `json:"duration" validate:"required,min=1,max=30"`
	GroupSize   int      `json:"groupSize" validate:"required,min=1,max=20"`
	Interests   []string `json:"interests" validate:"required,min=1,dive,required"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate" validate:"required"`
}

// Activity is one scheduled, costed line item within a day. IDs are
// assigned during normalization; they never come from the model.
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Cost        float64      `json:"cost"`
	Type        ActivityType `json:"type"`
}

// DayPlan is one day of the itinerary. Activities keep the model's
// order; TotalCost is always the sum of their costs.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	TotalCost  float64    `json:"totalCost"`
}

// CostSummary aggregates costs per category across the whole itinerary.
type CostSummary struct {
	Accommodation float64 `json:"accommodation"`
	Transport     float64 `json:"transport"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
}

// Total is the sum of all summary buckets.
func (s CostSummary) Total() float64 {
	return s.Accommodation + s.Transport + s.Activities + s.Meals
}

// GeneratedItinerary is the canonical, cost-consistent plan produced by
// normalization. TotalBudget always equals Summary.Total() and the sum
// of all day totals.
type GeneratedItinerary struct {
	Destination string      `json:"destination"`
	Duration    string      `json:"duration"`
	TotalBudget float64     `json:"totalBudget"`
	Days        []DayPlan   `json:"days"`
	Summary     CostSummary `json:"summary"`
}

// Trip binds submitted preferences to an optional generated itinerary
// and a booking flag. Records are mutated exactly twice in the intended
// flow: once to attach the itinerary, once to mark the booking.
type Trip struct {
	ID                 string              `json:"id"`
	Destination        string              `json:"destination"`
	Budget             int                 `json:"budget"`
	Duration           int                 `json:"duration"`
	GroupSize          int                 `json:"groupSize"`
	Interests          []string            `json:"interests"`
	StartDate          string              `json:"startDate"`
	EndDate            string              `json:"endDate"`
	GeneratedItinerary *GeneratedItinerary `json:"generatedItinerary"`
	IsBooked           bool                `json:"isBooked"`
	CreatedAt          time.Time           `json:"createdAt"`
}
