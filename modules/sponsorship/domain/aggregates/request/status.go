package request

import "fmt"

// Status is the lifecycle code of a sponsorship request as stored by the
// events backend.
type Status int

const (
	StatusOpen       Status = 1
	StatusInProgress Status = 2
	StatusClosed     Status = 3
	StatusArchived   Status = 4
	StatusRejected   Status = 5
)

// StatusMeta carries the display label and color tone for a status code.
type StatusMeta struct {
	Label string
	Tone  string
}

var statusMeta = map[Status]StatusMeta{
	StatusOpen:       {Label: "Open", Tone: "blue"},
	StatusInProgress: {Label: "In Progress", Tone: "amber"},
	StatusClosed:     {Label: "Closed", Tone: "green"},
	StatusArchived:   {Label: "Archived", Tone: "gray"},
	StatusRejected:   {Label: "Rejected", Tone: "red"},
}

// Meta never fails: unknown codes render as "Status {n}" in gray so a new
// backend status does not break the listing.
func (s Status) Meta() StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: fmt.Sprintf("Status %d", s), Tone: "gray"}
}

func (s Status) String() string {
	return s.Meta().Label
}
