package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hrassist/pkg/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("create and get round-trip", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		defer store.Close()

		sess := session.New("id-1", "tok-1", time.Now().Add(time.Hour))
		sess.SetValue("auth_user", `{"id":"u1"}`)
		require.NoError(t, store.Create(ctx, sess))

		got, err := store.Get(ctx, "tok-1")
		require.NoError(t, err)
		assert.Equal(t, "id-1", got.ID)
		assert.Equal(t, `{"id":"u1"}`, session.ValueOr(got, "auth_user", ""))
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		defer store.Close()

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("expired session is evicted on get", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		defer store.Close()

		sess := session.New("id-2", "tok-2", time.Now().Add(-time.Minute))
		require.NoError(t, store.Create(ctx, sess))

		_, err := store.Get(ctx, "tok-2")
		assert.ErrorIs(t, err, session.ErrExpired)

		_, err = store.Get(ctx, "tok-2")
		assert.ErrorIs(t, err, session.ErrNotFound, "evicted after first lookup")
	})

	t.Run("update reindexes a rotated token", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		defer store.Close()

		sess := session.New("id-3", "tok-old", time.Now().Add(time.Hour))
		require.NoError(t, store.Create(ctx, sess))

		sess.Token = "tok-new"
		require.NoError(t, store.Update(ctx, sess))

		_, err := store.Get(ctx, "tok-old")
		assert.ErrorIs(t, err, session.ErrNotFound, "old token must stop working")

		got, err := store.Get(ctx, "tok-new")
		require.NoError(t, err)
		assert.Equal(t, "id-3", got.ID)
	})

	t.Run("delete removes by id", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		defer store.Close()

		sess := session.New("id-4", "tok-4", time.Now().Add(time.Hour))
		require.NoError(t, store.Create(ctx, sess))
		require.NoError(t, store.Delete(ctx, "id-4"))

		_, err := store.Get(ctx, "tok-4")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		defer store.Close()

		sess := session.New("id-5", "tok-5", time.Now().Add(time.Hour))
		require.NoError(t, store.Create(ctx, sess))

		got, err := store.Get(ctx, "tok-5")
		require.NoError(t, err)
		got.Token = "mutated"

		again, err := store.Get(ctx, "tok-5")
		require.NoError(t, err)
		assert.Equal(t, "tok-5", again.Token)
	})
}

func TestSessionValues(t *testing.T) {
	t.Parallel()

	t.Run("set marks dirty, clear resets", func(t *testing.T) {
		t.Parallel()

		sess := session.New("id", "tok", time.Now().Add(time.Hour))
		sess.ClearDirty()

		sess.SetValue("k", "v")
		assert.True(t, sess.IsDirty())

		sess.ClearDirty()
		sess.DeleteValue("missing")
		assert.False(t, sess.IsDirty(), "deleting an absent key is not a change")

		sess.DeleteValue("k")
		assert.True(t, sess.IsDirty())
	})

	t.Run("typed value helpers", func(t *testing.T) {
		t.Parallel()

		sess := session.New("id", "tok", time.Now().Add(time.Hour))
		sess.SetValue("name", "Jane")

		got, err := session.Value[string](sess, "name")
		require.NoError(t, err)
		assert.Equal(t, "Jane", got)

		_, err = session.Value[int](sess, "name")
		assert.Error(t, err, "type mismatch")

		_, err = session.Value[string](sess, "absent")
		assert.ErrorIs(t, err, session.ErrNotFound)

		assert.Equal(t, "fallback", session.ValueOr(sess, "absent", "fallback"))
	})

	t.Run("authenticated requires a non-empty user id", func(t *testing.T) {
		t.Parallel()

		sess := session.New("id", "tok", time.Now().Add(time.Hour))
		assert.False(t, sess.IsAuthenticated())

		empty := ""
		sess.UserID = &empty
		assert.False(t, sess.IsAuthenticated())

		uid := "u1"
		sess.UserID = &uid
		assert.True(t, sess.IsAuthenticated())
	})
}
