package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNeedsSupport TicketStatus = "needs_support"
	StatusInProgress   TicketStatus = "in_progress"
	StatusInReview     TicketStatus = "in_review"
	StatusDone         TicketStatus = "done"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNeedsSupport: true,
	StatusInProgress:   true,
	StatusInReview:     true,
	StatusDone:         true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusNeedsSupport: {
		StatusInProgress,
		StatusInReview,
		StatusDone,
	},
	StatusInProgress: {
		StatusInReview,
		StatusDone,
		StatusNeedsSupport,
	},
	StatusInReview: {
		StatusInProgress,
		StatusDone,
		StatusNeedsSupport,
	},
	StatusDone: {
		StatusNeedsSupport,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsOpen() bool {
	return ts != StatusDone
}

func (ts TicketStatus) IsDone() bool {
	return ts == StatusDone
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
