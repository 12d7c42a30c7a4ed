package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestMailboxStore_AppendAndList(t *testing.T) {
	client := setupTestRedis(t)

	store := NewMailboxStoreWithPrefix(client, "planboard-test:")
	ctx := context.Background()

	first := testutil.NewAccessRequest().WithID(100).WithEmail("a@b.com").Build()
	second := testutil.NewAccessRequest().WithID(101).WithEmail("c@d.com").Build()

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	requests, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, first.ID, requests[0].ID)
	assert.Equal(t, first.RequesterEmail, requests[0].RequesterEmail)
	assert.Equal(t, second.ID, requests[1].ID)
	assert.WithinDuration(t, first.SubmittedAt, requests[0].SubmittedAt, 0)
}

func TestMailboxStore_EmptyStore(t *testing.T) {
	client := setupTestRedis(t)

	store := NewMailboxStoreWithPrefix(client, "planboard-test:")
	ctx := context.Background()

	requests, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)

	ids, err := store.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMailboxStore_Remove(t *testing.T) {
	client := setupTestRedis(t)

	store := NewMailboxStoreWithPrefix(client, "planboard-test:")
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, testutil.NewAccessRequest().WithID(100).Build()))
	require.NoError(t, store.Append(ctx, testutil.NewAccessRequest().WithID(101).Build()))

	require.NoError(t, store.Remove(ctx, 100))

	requests, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(101), requests[0].ID)

	// Removing an unknown id is not an error.
	require.NoError(t, store.Remove(ctx, 9999))
}

func TestMailboxStore_ReadIDsRoundTrip(t *testing.T) {
	client := setupTestRedis(t)

	store := NewMailboxStoreWithPrefix(client, "planboard-test:")
	ctx := context.Background()

	require.NoError(t, store.SaveReadIDs(ctx, []int64{100, 101}))

	ids, err := store.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101}, ids)

	// A save replaces the whole set, it does not merge.
	require.NoError(t, store.SaveReadIDs(ctx, []int64{101}))
	ids, err = store.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, ids)
}

func TestMailboxStore_PrefixIsolation(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	one := NewMailboxStoreWithPrefix(client, "tenant-one:")
	two := NewMailboxStoreWithPrefix(client, "tenant-two:")

	require.NoError(t, one.Append(ctx, testutil.NewAccessRequest().WithID(100).Build()))

	requests, err := two.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}
