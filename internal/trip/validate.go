package trip

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one user-correctable validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages carries the user-facing message for each constrained field.
var fieldMessages = map[string]string{
	"destination": "Destination is required",
	"budget":      "Budget must be at least ₹1000",
	"duration":    "Duration must be between 1-30 days",
	"groupSize":   "Group size must be between 1-20 people",
	"interests":   "At least one interest must be selected",
	"startDate":   "Start date is required",
	"endDate":     "End date is required",
}

// ValidatePreferences checks p against the structural and range
// constraints of the planner and returns every violated field, not just
// the first, so the client can show all problems at once. A nil return
// means p is valid.
func ValidatePreferences(p Preferences) []FieldError {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "preferences", Message: err.Error()}}
	}

	var out []FieldError
	seen := make(map[string]bool)
	for _, fe := range verrs {
		// "interests[2]" style names collapse onto their parent field.
		field := strings.SplitN(fe.Field(), "[", 2)[0]
		if seen[field] {
			continue
		}
		seen[field] = true

		msg, known := fieldMessages[field]
		if !known {
			msg = fmt.Sprintf("%s is invalid", field)
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}

// PreferencesToTrip copies validated preferences onto a fresh Trip shell.
// The store stamps identity and creation time.
func PreferencesToTrip(p Preferences) Trip {
	return Trip{
		Destination: p.Destination,
		Budget:      p.Budget,
		Duration:    p.Duration,
		GroupSize:   p.GroupSize,
		Interests:   p.Interests,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}
