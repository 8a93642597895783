package valueobjects

import "fmt"

// ServiceType identifies how a mailbox is polled.
type ServiceType string

const (
	// ServiceGmail uses the Gmail API with OAuth2 credentials.
	ServiceGmail ServiceType = "gmail"
	// ServiceOther uses plain IMAP with username/password.
	ServiceOther ServiceType = "other"
)

var validServiceTypes = map[ServiceType]bool{
	ServiceGmail: true,
	ServiceOther: true,
}

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	return validServiceTypes[s]
}

func (s ServiceType) IsGmail() bool {
	return s == ServiceGmail
}

func NewServiceType(raw string) (ServiceType, error) {
	s := ServiceType(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unsupported mailbox service type: %s", raw)
	}
	return s, nil
}
