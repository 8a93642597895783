package mailbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "pepperminto/internal/domain/mailbox/valueobjects"
)

func TestNewIMAPMailbox(t *testing.T) {
	t.Run("valid mailbox is active immediately", func(t *testing.T) {
		mb, err := NewIMAPMailbox("support", "support@example.com", "secret", "imap.example.com", true)
		require.NoError(t, err)
		assert.Equal(t, vo.ServiceOther, mb.ServiceType())
		assert.True(t, mb.IsActive())
		assert.True(t, mb.TLS())
		assert.Zero(t, mb.LastSeenUID())
	})

	tests := []struct {
		name                                  string
		mbName, username, password, hostname string
	}{
		{"missing name", "", "u", "p", "h"},
		{"missing username", "n", "", "p", "h"},
		{"missing password", "n", "u", "", "h"},
		{"missing hostname", "n", "u", "p", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIMAPMailbox(tt.mbName, tt.username, tt.password, tt.hostname, true)
			assert.Error(t, err)
		})
	}
}

func TestNewGmailMailbox(t *testing.T) {
	t.Run("gmail mailbox inactive until authorized", func(t *testing.T) {
		mb, err := NewGmailMailbox("gmail-support", "client-id", "client-secret", "https://example.com/callback")
		require.NoError(t, err)
		assert.Equal(t, vo.ServiceGmail, mb.ServiceType())
		assert.False(t, mb.IsActive())
	})

	t.Run("missing oauth credentials rejected", func(t *testing.T) {
		_, err := NewGmailMailbox("gmail-support", "", "secret", "uri")
		assert.Error(t, err)
		_, err = NewGmailMailbox("gmail-support", "id", "", "uri")
		assert.Error(t, err)
		_, err = NewGmailMailbox("gmail-support", "id", "secret", "")
		assert.Error(t, err)
	})
}

func TestMailbox_Authorize(t *testing.T) {
	t.Run("authorization stores tokens and activates", func(t *testing.T) {
		mb, err := NewGmailMailbox("gmail-support", "id", "secret", "uri")
		require.NoError(t, err)

		expiry := time.Now().Add(time.Hour)
		err = mb.Authorize("access", "refresh", expiry)
		require.NoError(t, err)

		assert.True(t, mb.IsActive())
		assert.Equal(t, "access", mb.AccessToken())
		assert.Equal(t, "refresh", mb.RefreshToken())
		require.NotNil(t, mb.TokenExpiry())
		assert.Equal(t, expiry, *mb.TokenExpiry())
	})

	t.Run("imap mailbox cannot be authorized", func(t *testing.T) {
		mb, err := NewIMAPMailbox("support", "u", "p", "h", true)
		require.NoError(t, err)

		err = mb.Authorize("access", "refresh", time.Now())
		assert.ErrorContains(t, err, "only gmail mailboxes")
	})

	t.Run("empty tokens rejected", func(t *testing.T) {
		mb, err := NewGmailMailbox("gmail-support", "id", "secret", "uri")
		require.NoError(t, err)

		assert.Error(t, mb.Authorize("", "refresh", time.Now()))
		assert.Error(t, mb.Authorize("access", "", time.Now()))
		assert.False(t, mb.IsActive())
	})
}

func TestMailbox_AdvanceLastSeenUID(t *testing.T) {
	mb, err := NewIMAPMailbox("support", "u", "p", "h", true)
	require.NoError(t, err)

	mb.AdvanceLastSeenUID(10)
	assert.Equal(t, uint32(10), mb.LastSeenUID())

	// The cursor never moves backwards.
	mb.AdvanceLastSeenUID(5)
	assert.Equal(t, uint32(10), mb.LastSeenUID())

	mb.AdvanceLastSeenUID(10)
	assert.Equal(t, uint32(10), mb.LastSeenUID())

	mb.AdvanceLastSeenUID(11)
	assert.Equal(t, uint32(11), mb.LastSeenUID())
}

func TestMailbox_Deactivate(t *testing.T) {
	mb, err := NewIMAPMailbox("support", "u", "p", "h", true)
	require.NoError(t, err)

	mb.Deactivate()
	assert.False(t, mb.IsActive())
}

func TestServiceType(t *testing.T) {
	st, err := vo.NewServiceType("gmail")
	require.NoError(t, err)
	assert.True(t, st.IsGmail())

	st, err = vo.NewServiceType("other")
	require.NoError(t, err)
	assert.False(t, st.IsGmail())

	_, err = vo.NewServiceType("exchange")
	assert.Error(t, err)
}
