package decision

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput marks request bodies that fail validation. Handlers map it
// to HTTP 400; it never reaches a store.
var ErrInvalidInput = errors.New("invalid input")

const (
	// DefaultTask is substituted when the task field is absent.
	DefaultTask = "unspecified"
	// DefaultComplexity is substituted when the complexity field is absent.
	// A malformed complexity is a distinct case and is rejected instead.
	DefaultComplexity = 0.5
)

// Input is a validated routing request: task label plus a complexity score
// already clamped into [0, 1].
type Input struct {
	Task       string
	Complexity float64
}

type routePayload struct {
	Task       json.RawMessage `json:"task"`
	Complexity json.RawMessage `json:"complexity"`
}

// ParseRouteRequest validates a raw request body into an Input.
//
// Each field is parsed into its strict semantic type rather than coerced
// loosely: a missing field gets its documented default, while a present but
// unparseable complexity returns ErrInvalidInput. Complexity accepts a JSON
// number or a numeric string ("0.7"); anything else, including null and
// non-finite values, is rejected. Out-of-range scores are clamped into
// [0, 1] so stored records always satisfy the audit range invariant.
func ParseRouteRequest(body []byte) (Input, error) {
	var p routePayload
	if err := json.Unmarshal(body, &p); err != nil {
		return Input{}, fmt.Errorf("%w: body is not a JSON object: %v", ErrInvalidInput, err)
	}

	task, err := parseTask(p.Task)
	if err != nil {
		return Input{}, err
	}
	complexity, err := parseComplexity(p.Complexity)
	if err != nil {
		return Input{}, err
	}

	return Input{Task: task, Complexity: clamp01(complexity)}, nil
}

func parseTask(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultTask, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return DefaultTask, nil
		}
		return s, nil
	}
	// Non-string scalars are coerced to their textual form for the audit
	// label; the decision itself never inspects the task.
	return strings.TrimSpace(string(raw)), nil
}

func parseComplexity(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return DefaultComplexity, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: complexity is not valid JSON: %v", ErrInvalidInput, err)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: complexity %q is not a number", ErrInvalidInput, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: complexity must be a number, got %s", ErrInvalidInput, string(raw))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
