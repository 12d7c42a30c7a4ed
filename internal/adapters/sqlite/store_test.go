package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard/internal/testutil"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(testutil.TempSQLitePath(t))
	require.NoError(t, err)
	require.NoError(t, store.ApplyMigrations())
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("warning: failed to close store: %v", err)
		}
	})
	return store
}

func TestSQLiteMailbox_AppendAndList(t *testing.T) {
	store := setupTestStore(t)
	mailbox := store.Mailbox()
	ctx := context.Background()

	first := testutil.NewAccessRequest().WithID(100).WithEmail("a@b.com").Build()
	second := testutil.NewAccessRequest().WithID(101).WithEmail("c@d.com").Build()

	require.NoError(t, mailbox.Append(ctx, first))
	require.NoError(t, mailbox.Append(ctx, second))

	requests, err := mailbox.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "a@b.com", requests[0].RequesterEmail)
	assert.Equal(t, int64(101), requests[1].ID)
}

func TestSQLiteMailbox_EmptyStore(t *testing.T) {
	store := setupTestStore(t)
	mailbox := store.Mailbox()
	ctx := context.Background()

	requests, err := mailbox.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)

	ids, err := mailbox.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSQLiteMailbox_Remove(t *testing.T) {
	store := setupTestStore(t)
	mailbox := store.Mailbox()
	ctx := context.Background()

	require.NoError(t, mailbox.Append(ctx, testutil.NewAccessRequest().WithID(100).Build()))
	require.NoError(t, mailbox.Append(ctx, testutil.NewAccessRequest().WithID(101).Build()))

	require.NoError(t, mailbox.Remove(ctx, 100))
	require.NoError(t, mailbox.Remove(ctx, 9999))

	requests, err := mailbox.List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(101), requests[0].ID)
}

func TestSQLiteMailbox_ReadIDsRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	mailbox := store.Mailbox()
	ctx := context.Background()

	require.NoError(t, mailbox.SaveReadIDs(ctx, []int64{100, 101}))

	ids, err := mailbox.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101}, ids)

	require.NoError(t, mailbox.SaveReadIDs(ctx, []int64{101}))
	ids, err = mailbox.ReadIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, ids)
}

func TestSQLiteMailbox_SurvivesReopen(t *testing.T) {
	path := testutil.TempSQLitePath(t)

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.ApplyMigrations())

	ctx := context.Background()
	require.NoError(t, store.Mailbox().Append(ctx, testutil.NewAccessRequest().WithID(100).Build()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.ApplyMigrations())

	requests, err := reopened.Mailbox().List(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, int64(100), requests[0].ID)
}

func TestSQLiteTokenVault(t *testing.T) {
	store := setupTestStore(t)
	vault := store.TokenVault()
	ctx := context.Background()

	assert.Error(t, vault.Store(ctx, ""))

	require.NoError(t, vault.Store(ctx, "tok-123"))
	require.NoError(t, vault.Clear(ctx))
	require.NoError(t, vault.Clear(ctx))
}
