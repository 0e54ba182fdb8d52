// Package decision defines the audit record written for every routing call
// and the validation that turns a raw request body into one.
package decision

import (
	"time"

	"github.com/google/uuid"

	"github.com/QuantumPodLabs/quantumpod/internal/policy"
)

// Record is the immutable audit entry produced per routing request.
// Once appended to a store it is never updated; the decision label reflects
// the policy at insert time and is not recomputed on later reads.
type Record struct {
	ID         string       `json:"id"`
	Timestamp  time.Time    `json:"ts"`
	Task       string       `json:"task"`
	Complexity float64      `json:"complexity"`
	Decision   policy.Label `json:"decision"`
	ClientIP   string       `json:"client_ip,omitempty"`
	UserAgent  string       `json:"user_agent,omitempty"`
	Path       string       `json:"path,omitempty"`
}

// Provenance carries best-effort request origin metadata. Empty fields are
// fine; absence of provenance is never an error.
type Provenance struct {
	ClientIP  string
	UserAgent string
	Path      string
}

// NewRecord stamps a validated input with a fresh id, the current UTC
// instant, the policy decision, and provenance.
func NewRecord(in Input, prov Provenance) Record {
	return Record{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Task:       in.Task,
		Complexity: in.Complexity,
		Decision:   policy.Decide(in.Task, in.Complexity),
		ClientIP:   prov.ClientIP,
		UserAgent:  prov.UserAgent,
		Path:       prov.Path,
	}
}
