package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pepperminto/internal/domain/ticket"
	vo "pepperminto/internal/domain/ticket/valueobjects"
	"pepperminto/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.TicketModel{},
		&models.ClientModel{},
		&models.UserModel{},
		&models.ArticleModel{},
		&models.NotificationModel{},
		&models.MailboxModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, title string, priority vo.Priority, ticketType vo.TicketType) *ticket.Ticket {
	tk, err := ticket.NewTicket(title, "Reporter", "reporter@example.com", "details", priority, ticketType)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		tk := createTestTicket(t, "First ticket", vo.PriorityHigh, vo.TypeIncident)
		err := repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("round trip keeps fields", func(t *testing.T) {
		tk := createTestTicket(t, "Round trip", vo.PriorityLow, vo.TypeProblem)
		require.NoError(t, tk.SetSource("support-inbox", "<rt-1@example.com>"))
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "Round trip", found.Title())
		assert.Equal(t, vo.PriorityLow, found.Priority())
		assert.Equal(t, "support-inbox", found.FromEmailQueue())
		assert.Equal(t, "<rt-1@example.com>", found.SourceMessageID())
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99999)
		assert.Error(t, err)
	})

	t.Run("duplicate source message id rejected", func(t *testing.T) {
		tk1 := createTestTicket(t, "Email one", vo.PriorityMedium, vo.TypeSupport)
		require.NoError(t, tk1.SetSource("support-inbox", "<dup@example.com>"))
		require.NoError(t, repo.Save(ctx, tk1))

		tk2 := createTestTicket(t, "Email two", vo.PriorityMedium, vo.TypeSupport)
		require.NoError(t, tk2.SetSource("support-inbox", "<dup@example.com>"))
		err := repo.Save(ctx, tk2)
		assert.Error(t, err)
	})

	t.Run("manual tickets have no source and do not collide", func(t *testing.T) {
		tk1 := createTestTicket(t, "Manual one", vo.PriorityMedium, vo.TypeSupport)
		tk2 := createTestTicket(t, "Manual two", vo.PriorityMedium, vo.TypeSupport)
		assert.NoError(t, repo.Save(ctx, tk1))
		assert.NoError(t, repo.Save(ctx, tk2))
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("assignment persists", func(t *testing.T) {
		tk := createTestTicket(t, "To assign", vo.PriorityMedium, vo.TypeSupport)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.AssignTo(5))
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, found.AssigneeID())
		assert.Equal(t, uint(5), *found.AssigneeID())
		assert.Equal(t, vo.StatusInProgress, found.Status())
	})

	t.Run("unassign writes NULL", func(t *testing.T) {
		tk := createTestTicket(t, "To unassign", vo.PriorityMedium, vo.TypeSupport)
		require.NoError(t, tk.AssignTo(5))
		require.NoError(t, repo.Save(ctx, tk))

		tk.Unassign()
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, found.AssigneeID())
	})
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seed := func(title string, priority vo.Priority, assignee *uint, status vo.TicketStatus, queue string) *ticket.Ticket {
		tk := createTestTicket(t, title, priority, vo.TypeSupport)
		if assignee != nil {
			require.NoError(t, tk.AssignTo(*assignee))
		}
		if status != tk.Status() {
			require.NoError(t, tk.ChangeStatus(status))
		}
		if queue != "" {
			require.NoError(t, tk.SetSource(queue, "<"+title+"@example.com>"))
		}
		require.NoError(t, repo.Save(ctx, tk))
		return tk
	}

	agent := uint(3)
	seed("Open unassigned", vo.PriorityHigh, nil, vo.StatusNeedsSupport, "")
	seed("Open assigned", vo.PriorityLow, &agent, vo.StatusInProgress, "")
	seed("In review", vo.PriorityMedium, &agent, vo.StatusInReview, "")
	seed("Completed", vo.PriorityMedium, &agent, vo.StatusDone, "")
	seed("From mail", vo.PriorityMedium, nil, vo.StatusNeedsSupport, "support-inbox")

	t.Run("no filter returns everything", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})

	t.Run("open filter excludes done", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Open: true})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		for _, tk := range tickets {
			assert.True(t, tk.Status().IsOpen())
		}
	})

	t.Run("done filter", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Done: true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Completed", tickets[0].Title())
	})

	t.Run("unassigned filter", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Unassigned: true})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, tk := range tickets {
			assert.Nil(t, tk.AssigneeID())
		}
	})

	t.Run("queue filter", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{QueueName: "support-inbox"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "From mail", tickets[0].Title())
	})

	t.Run("status filter", func(t *testing.T) {
		status := vo.StatusInReview
		_, total, err := repo.List(ctx, ticket.TicketFilter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("priority filter", func(t *testing.T) {
		priority := vo.PriorityHigh
		_, total, err := repo.List(ctx, ticket.TicketFilter{Priority: &priority})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("assignee filter", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{AssigneeID: &agent})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("pagination caps page size", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("sort whitelist falls back on unknown column", func(t *testing.T) {
		_, _, err := repo.List(ctx, ticket.TicketFilter{SortBy: "password; DROP TABLE tickets"})
		assert.NoError(t, err)
	})
}

func TestTicketRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	agent := uint(3)

	open := createTestTicket(t, "Open", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, repo.Save(ctx, open))

	assigned := createTestTicket(t, "Assigned", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, assigned.AssignTo(agent))
	require.NoError(t, repo.Save(ctx, assigned))

	done := createTestTicket(t, "Done", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, done.ChangeStatus(vo.StatusDone))
	require.NoError(t, repo.Save(ctx, done))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Open)
	assert.Equal(t, int64(1), counts.Completed)
	// Completed tickets never count as unassigned, even without an assignee.
	assert.Equal(t, int64(1), counts.Unassigned)
}

func TestTicketRepository_ExistsBySourceMessageID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Mail ticket", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, tk.SetSource("support-inbox", "<exists@example.com>"))
	require.NoError(t, repo.Save(ctx, tk))

	exists, err := repo.ExistsBySourceMessageID(ctx, "<exists@example.com>")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySourceMessageID(ctx, "<unseen@example.com>")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTicketRepository_DetachClient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk1 := createTestTicket(t, "Client ticket one", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, tk1.SetClient(7))
	require.NoError(t, repo.Save(ctx, tk1))

	tk2 := createTestTicket(t, "Client ticket two", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, tk2.SetClient(8))
	require.NoError(t, repo.Save(ctx, tk2))

	require.NoError(t, repo.DetachClient(ctx, 7))

	found1, err := repo.FindByID(ctx, tk1.ID())
	require.NoError(t, err)
	assert.Nil(t, found1.ClientID())

	found2, err := repo.FindByID(ctx, tk2.ID())
	require.NoError(t, err)
	require.NotNil(t, found2.ClientID())
	assert.Equal(t, uint(8), *found2.ClientID())
}

func TestTicketRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "To delete", vo.PriorityMedium, vo.TypeSupport)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.FindByID(ctx, tk.ID())
	assert.Error(t, err)

	assert.Error(t, repo.Delete(ctx, tk.ID()))
}
