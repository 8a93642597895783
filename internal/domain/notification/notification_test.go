package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	ticketID := uint(12)

	t.Run("valid notification starts unread", func(t *testing.T) {
		n, err := NewNotification(3, &ticketID, "Ticket #12 was assigned to you")
		require.NoError(t, err)
		assert.Equal(t, uint(3), n.UserID())
		assert.Equal(t, uint(12), *n.TicketID())
		assert.False(t, n.IsRead())
	})

	t.Run("ticket reference is optional", func(t *testing.T) {
		n, err := NewNotification(3, nil, "Welcome")
		require.NoError(t, err)
		assert.Nil(t, n.TicketID())
	})

	t.Run("zero user rejected", func(t *testing.T) {
		_, err := NewNotification(0, nil, "text")
		assert.Error(t, err)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := NewNotification(3, nil, "")
		assert.Error(t, err)
	})
}

func TestNotification_MarkAsRead(t *testing.T) {
	n, err := NewNotification(3, nil, "text")
	require.NoError(t, err)

	n.MarkAsRead()
	assert.True(t, n.IsRead())

	// Repeated marking stays read.
	n.MarkAsRead()
	assert.True(t, n.IsRead())
}

func TestNotification_CanBeReadBy(t *testing.T) {
	n, err := NewNotification(3, nil, "text")
	require.NoError(t, err)

	assert.True(t, n.CanBeReadBy(3))
	assert.False(t, n.CanBeReadBy(4))
}

func TestReconstructNotification(t *testing.T) {
	created := time.Now().Add(-time.Hour)

	n, err := ReconstructNotification(9, 3, nil, "text", true, created)
	require.NoError(t, err)
	assert.Equal(t, uint(9), n.ID())
	assert.True(t, n.IsRead())
	assert.Equal(t, created, n.CreatedAt())

	_, err = ReconstructNotification(0, 3, nil, "text", false, created)
	assert.Error(t, err)
}
