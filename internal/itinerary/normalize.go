package itinerary

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"ai-trip-planner/internal/trip"
)

// Normalize transforms the model's provisional reply into the canonical
// itinerary. It alone guarantees the numeric consistency everything
// downstream displays and bills against:
//
//	totalBudget == sum of summary buckets == sum of day totals == sum of activity costs
//
// The model's own totalBudget is discarded in favor of the recomputed
// value. Every activity gets a fresh id; externally supplied ids are
// never trusted. Negative costs are clamped to zero and unrecognized
// category tags are coerced to "activity" so the invariant above holds
// for any reply the parser accepts.
func Normalize(prefs trip.Preferences, resp Response) trip.GeneratedItinerary {
	days := make([]trip.DayPlan, 0, len(resp.Days))
	var summary trip.CostSummary

	for _, d := range resp.Days {
		activities := make([]trip.Activity, 0, len(d.Activities))
		for _, a := range d.Activities {
			cost := a.Cost
			if cost < 0 {
				cost = 0
			}
			kind := trip.ActivityType(a.Type)
			if !trip.KnownActivityType(kind) {
				kind = trip.ActivityActivity
			}
			activities = append(activities, trip.Activity{
				ID:          uuid.NewString(),
				Time:        a.Time,
				Title:       a.Title,
				Description: a.Description,
				Location:    a.Location,
				Cost:        cost,
				Type:        kind,
			})

			switch kind {
			case trip.ActivityAccommodation:
				summary.Accommodation += cost
			case trip.ActivityTransport:
				summary.Transport += cost
			case trip.ActivityActivity:
				summary.Activities += cost
			case trip.ActivityMeal:
				summary.Meals += cost
			}
		}

		days = append(days, trip.DayPlan{
			Day:  d.Day,
			Date: d.Date,
			Activities: activities,
			TotalCost: lo.SumBy(activities, func(a trip.Activity) float64 {
				return a.Cost
			}),
		})
	}

	return trip.GeneratedItinerary{
		Destination: resp.Destination,
		Duration:    durationLabel(prefs.Duration),
		TotalBudget: summary.Total(),
		Days:        days,
		Summary:     summary,
	}
}

// durationLabel derives the display label from the requested duration,
// not from however many days the model actually returned.
func durationLabel(days int) string {
	return fmt.Sprintf("%d Days, %d Nights", days, days-1)
}
