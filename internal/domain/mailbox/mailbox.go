package mailbox

import (
	"fmt"
	"time"

	vo "pepperminto/internal/domain/mailbox/valueobjects"
)

// Mailbox is a configured email queue polled for incoming support mail.
type Mailbox struct {
	id           uint
	name         string
	serviceType  vo.ServiceType
	username     string
	password     string
	hostname     string
	tls          bool
	clientID     string
	clientSecret string
	redirectURI  string
	accessToken  string
	refreshToken string
	tokenExpiry  *time.Time
	lastSeenUID  uint32
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewIMAPMailbox creates a mailbox polled over IMAP. It is active immediately
// since no authorization round-trip is needed.
func NewIMAPMailbox(name, username, password, hostname string, tls bool) (*Mailbox, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("password is required")
	}
	if len(hostname) == 0 {
		return nil, fmt.Errorf("hostname is required")
	}

	now := time.Now()

	return &Mailbox{
		name:        name,
		serviceType: vo.ServiceOther,
		username:    username,
		password:    password,
		hostname:    hostname,
		tls:         tls,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewGmailMailbox creates a Gmail mailbox. It stays inactive until the OAuth
// callback stores tokens via Authorize.
func NewGmailMailbox(name, clientID, clientSecret, redirectURI string) (*Mailbox, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if len(clientSecret) == 0 {
		return nil, fmt.Errorf("client secret is required")
	}
	if len(redirectURI) == 0 {
		return nil, fmt.Errorf("redirect URI is required")
	}

	now := time.Now()

	return &Mailbox{
		name:         name,
		serviceType:  vo.ServiceGmail,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructMailbox(
	id uint,
	name string,
	serviceType vo.ServiceType,
	username string,
	password string,
	hostname string,
	tls bool,
	clientID string,
	clientSecret string,
	redirectURI string,
	accessToken string,
	refreshToken string,
	tokenExpiry *time.Time,
	lastSeenUID uint32,
	active bool,
	createdAt, updatedAt time.Time,
) (*Mailbox, error) {
	if id == 0 {
		return nil, fmt.Errorf("mailbox ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !serviceType.IsValid() {
		return nil, fmt.Errorf("invalid service type")
	}

	return &Mailbox{
		id:           id,
		name:         name,
		serviceType:  serviceType,
		username:     username,
		password:     password,
		hostname:     hostname,
		tls:          tls,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		tokenExpiry:  tokenExpiry,
		lastSeenUID:  lastSeenUID,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (m *Mailbox) ID() uint {
	return m.id
}

func (m *Mailbox) Name() string {
	return m.name
}

func (m *Mailbox) ServiceType() vo.ServiceType {
	return m.serviceType
}

func (m *Mailbox) Username() string {
	return m.username
}

func (m *Mailbox) Password() string {
	return m.password
}

func (m *Mailbox) Hostname() string {
	return m.hostname
}

func (m *Mailbox) TLS() bool {
	return m.tls
}

func (m *Mailbox) ClientID() string {
	return m.clientID
}

func (m *Mailbox) ClientSecret() string {
	return m.clientSecret
}

func (m *Mailbox) RedirectURI() string {
	return m.redirectURI
}

func (m *Mailbox) AccessToken() string {
	return m.accessToken
}

func (m *Mailbox) RefreshToken() string {
	return m.refreshToken
}

func (m *Mailbox) TokenExpiry() *time.Time {
	return m.tokenExpiry
}

func (m *Mailbox) LastSeenUID() uint32 {
	return m.lastSeenUID
}

func (m *Mailbox) IsActive() bool {
	return m.active
}

func (m *Mailbox) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Mailbox) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Mailbox) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("mailbox ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("mailbox ID cannot be zero")
	}
	m.id = id
	return nil
}

// Authorize stores OAuth tokens obtained from the provider and activates the
// mailbox. Token fields are only ever populated through this method.
func (m *Mailbox) Authorize(accessToken, refreshToken string, expiry time.Time) error {
	if !m.serviceType.IsGmail() {
		return fmt.Errorf("only gmail mailboxes require authorization")
	}
	if len(accessToken) == 0 {
		return fmt.Errorf("access token is required")
	}
	if len(refreshToken) == 0 {
		return fmt.Errorf("refresh token is required")
	}

	m.accessToken = accessToken
	m.refreshToken = refreshToken
	m.tokenExpiry = &expiry
	m.active = true
	m.updatedAt = time.Now()

	return nil
}

// AdvanceLastSeenUID records the highest ingested IMAP UID. UIDs only move
// forward; a lower value is ignored.
func (m *Mailbox) AdvanceLastSeenUID(uid uint32) {
	if uid <= m.lastSeenUID {
		return
	}
	m.lastSeenUID = uid
	m.updatedAt = time.Now()
}

func (m *Mailbox) Deactivate() {
	m.active = false
	m.updatedAt = time.Now()
}
