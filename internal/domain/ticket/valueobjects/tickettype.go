package valueobjects

import "fmt"

type TicketType string

const (
	TypeSupport       TicketType = "support"
	TypeIncident      TicketType = "incident"
	TypeProblem       TicketType = "problem"
	TypeChangeRequest TicketType = "change_request"
)

var validTicketTypes = map[TicketType]bool{
	TypeSupport:       true,
	TypeIncident:      true,
	TypeProblem:       true,
	TypeChangeRequest: true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
