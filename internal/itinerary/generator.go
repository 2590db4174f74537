// Package itinerary turns validated trip preferences into a canonical,
// cost-consistent day-by-day plan: it prompts the generative model for a
// strict JSON reply and normalizes that reply into domain types.
package itinerary

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"ai-trip-planner/internal/llm"
	"ai-trip-planner/internal/logger"
	"ai-trip-planner/internal/trip"
)

//go:embed itinerary_prompt.md
var itineraryPrompt string

// ErrUnavailable is returned when no generative model is configured.
// This is reported without attempting a call; handlers map it to 503.
var ErrUnavailable = errors.New("AI service unavailable - GEMINI_API_KEY not configured")

// GenerationError covers a generation attempt that failed: the call
// errored, timed out, or the reply could not be parsed into the
// expected shape. Handlers map it to 500.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Response is the provisional itinerary shape the model is asked to
// return. It is never exposed outside this package's API: Normalize
// converts it into trip.GeneratedItinerary.
type Response struct {
	Destination string        `json:"destination"`
	TotalBudget float64       `json:"totalBudget"`
	Days        []ResponseDay `json:"days"`
}

type ResponseDay struct {
	Day        int                `json:"day"`
	Date       string             `json:"date"`
	Activities []ResponseActivity `json:"activities"`
}

type ResponseActivity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Cost        float64 `json:"cost"`
	Type        string  `json:"type"`
}

// Generator produces itineraries through a TextGenerator. A Generator
// constructed without one is valid but permanently unavailable.
type Generator struct {
	textGen llm.TextGenerator
	log     *logger.Logger
}

// NewGenerator creates a Generator. textGen may be nil when no API key
// is configured; Generate then fails fast with ErrUnavailable.
func NewGenerator(textGen llm.TextGenerator, log *logger.Logger) *Generator {
	return &Generator{textGen: textGen, log: log}
}

// Available reports whether the generation capability is configured.
func (g *Generator) Available() bool {
	return g.textGen != nil
}

// Generate asks the model for an itinerary matching prefs and returns
// the normalized result. The context bounds the call; a deadline hit is
// surfaced as a timed-out GenerationError, never a hang.
func (g *Generator) Generate(ctx context.Context, prefs trip.Preferences) (*trip.GeneratedItinerary, error) {
	if !g.Available() {
		return nil, ErrUnavailable
	}

	prompt, err := buildPrompt(prefs)
	if err != nil {
		return nil, &GenerationError{Message: "failed to build itinerary prompt", Err: err}
	}

	resp, err := g.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &GenerationError{Message: "itinerary generation timed out", Err: err}
		}
		return nil, &GenerationError{Message: "AI itinerary generation failed", Err: err}
	}

	g.log.Info("itinerary generated",
		"destination", prefs.Destination,
		"model", resp.Usage.Model,
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens,
	)

	parsed, err := parseReply(resp.Content)
	if err != nil {
		return nil, err
	}

	if len(parsed.Days) != prefs.Duration {
		g.log.Warn("model returned a different day count than requested",
			"requested", prefs.Duration, "returned", len(parsed.Days))
	}

	result := Normalize(prefs, parsed)
	return &result, nil
}

type promptData struct {
	Destination string
	Budget      int
	Duration    int
	GroupSize   int
	Interests   string
	StartDate   string
	EndDate     string
}

func buildPrompt(prefs trip.Preferences) (string, error) {
	tmpl, err := template.New("itinerary").Parse(itineraryPrompt)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, promptData{
		Destination: prefs.Destination,
		Budget:      prefs.Budget,
		Duration:    prefs.Duration,
		GroupSize:   prefs.GroupSize,
		Interests:   strings.Join(prefs.Interests, ", "),
		StartDate:   prefs.StartDate,
		EndDate:     prefs.EndDate,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// parseReply decodes the model's raw reply. An empty or non-JSON body
// and a parseable body missing its required fields are both hard
// failures; a partial itinerary is never returned.
func parseReply(raw string) (Response, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Response{}, &GenerationError{Message: "empty response from model"}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var r Response
	if err := dec.Decode(&r); err != nil {
		return Response{}, &GenerationError{Message: "failed to parse itinerary JSON", Err: err}
	}

	if r.Destination == "" {
		return Response{}, &GenerationError{Message: "invalid AI response structure: missing destination"}
	}
	if r.Days == nil {
		return Response{}, &GenerationError{Message: "invalid AI response structure: missing days"}
	}
	return r, nil
}
