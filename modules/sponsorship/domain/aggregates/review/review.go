package review

import (
	"strings"
	"time"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Review is a single reviewer decision on a sponsorship request. The latest
// review for a request is the one surfaced to readers.
type Review struct {
	id          string
	eventID     string
	decision    Decision
	comment     string
	submittedAt time.Time
}

func New(eventID string, decision Decision, comment string, submittedAt time.Time) Review {
	return Review{
		eventID:     eventID,
		decision:    decision,
		comment:     strings.TrimSpace(comment),
		submittedAt: submittedAt,
	}
}

func Hydrate(id, eventID string, decision Decision, comment string, submittedAt time.Time) Review {
	return Review{
		id:          id,
		eventID:     eventID,
		decision:    decision,
		comment:     strings.TrimSpace(comment),
		submittedAt: submittedAt,
	}
}

func (r Review) ID() string             { return r.id }
func (r Review) EventID() string        { return r.eventID }
func (r Review) Decision() Decision     { return r.decision }
func (r Review) Comment() string        { return r.comment }
func (r Review) SubmittedAt() time.Time { return r.submittedAt }
func (r Review) IsZero() bool           { return r.eventID == "" }
