package topic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/brainboard/internal/adapter/memory"
	"github.com/heartmarshall/brainboard/internal/domain"
)

func TestRepo_Create_AssignsID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New(memory.New())

	created, err := repo.Create(ctx, &domain.Topic{Title: "Roadmap"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", got.Title)
}

func TestRepo_Create_KeepsGivenID(t *testing.T) {
	t.Parallel()
	repo := New(memory.New())

	created, err := repo.Create(context.Background(), &domain.Topic{ID: "1", Title: "Seeded"})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestRepo_List_NewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New(memory.New())

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &domain.Topic{Title: title})
		require.NoError(t, err)
	}

	topics, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "third", topics[0].Title)
	assert.Equal(t, "first", topics[2].Title)
}

func TestRepo_List_Empty(t *testing.T) {
	t.Parallel()
	repo := New(memory.New())

	topics, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New(memory.New())
	created, err := repo.Create(ctx, &domain.Topic{Title: "Old", Description: "keep"})
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	title := "New"
	updated, err := repo.Update(ctx, created.ID, domain.TopicUpdateParams{Title: &title, UpdatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "keep", updated.Description)
	assert.Equal(t, now, updated.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo := New(memory.New())

	_, err := repo.Update(context.Background(), "missing", domain.TopicUpdateParams{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepo_ListByParticipant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New(memory.New())

	_, err := repo.Create(ctx, &domain.Topic{Title: "mine", Participants: []domain.Participant{{UserID: "1", Role: domain.UserRoleOwner}}})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Topic{Title: "theirs", Participants: []domain.Participant{{UserID: "2", Role: domain.UserRoleOwner}}})
	require.NoError(t, err)

	topics, err := repo.ListByParticipant(ctx, "1")
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "mine", topics[0].Title)
}

func TestRepo_List_ByCreatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New(memory.New())

	day := func(d int) time.Time { return time.Date(2023, 11, d, 0, 0, 0, 0, time.UTC) }
	_, err := repo.Create(ctx, &domain.Topic{ID: "1", CreatedAt: day(15)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Topic{ID: "2", CreatedAt: day(10)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Topic{ID: "3", CreatedAt: day(20)})
	require.NoError(t, err)

	topics, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "3", topics[0].ID)
	assert.Equal(t, "1", topics[1].ID)
	assert.Equal(t, "2", topics[2].ID)
}
