package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/store"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) store.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		saved, err := s.Save("user", "/users/{id}")
		require.NoError(t, err)
		assert.Equal(t, "user", saved.Name)
		assert.Equal(t, 1, saved.Revision)
		_, err = uuid.Parse(saved.ID)
		assert.NoError(t, err)

		loaded, err := s.Load("user")
		require.NoError(t, err)
		assert.Equal(t, saved.ID, loaded.ID)
		assert.Equal(t, "/users/{id}", loaded.Source)
		assert.Equal(t, 1, loaded.Revision)
		assert.WithinDuration(t, saved.Updated, loaded.Updated, time.Second)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		_, err := s.Load("missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		first, err := s.Save("search", "/search{?q}")
		require.NoError(t, err)
		second, err := s.Save("search", "/search{?q,page}")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2, second.Revision)

		loaded, err := s.Load("search")
		require.NoError(t, err)
		assert.Equal(t, "/search{?q,page}", loaded.Source)
		assert.Equal(t, 2, loaded.Revision)
	})

	t.Run(name+"/Save_EmptyName", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		_, err := s.Save("", "/x")
		assert.ErrorIs(t, err, store.ErrEmptyName)
	})

	t.Run(name+"/Save_KeepsMalformedSource", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		_, err := s.Save("broken", "/a/{x:0}/{unterminated")
		require.NoError(t, err)
		loaded, err := s.Load("broken")
		require.NoError(t, err)
		assert.Equal(t, "/a/{x:0}/{unterminated", loaded.Source)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		records, err := s.List()
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run(name+"/List_OrderedByName", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		for _, n := range []string{"c", "a", "b"} {
			_, err := s.Save(n, "{"+n+"}")
			require.NoError(t, err)
		}

		records, err := s.List()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "a", records[0].Name)
		assert.Equal(t, "b", records[1].Name)
		assert.Equal(t, "c", records[2].Name)
		assert.Equal(t, "{b}", records[1].Source)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		_, err := s.Save("user", "/users/{id}")
		require.NoError(t, err)
		require.NoError(t, s.Delete("user"))

		_, err = s.Load("user")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run(name+"/Delete_Nonexistent", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		assert.NoError(t, s.Delete("missing"))
	})

	t.Run(name+"/Save_AfterDelete_NewID", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		first, err := s.Save("user", "/v1")
		require.NoError(t, err)
		require.NoError(t, s.Delete("user"))
		second, err := s.Save("user", "/v2")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 1, second.Revision)
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		s := factory(t)
		require.NoError(t, s.Close())

		_, err := s.Save("a", "b")
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		_, err = s.Load("a")
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		_, err = s.List()
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		assert.ErrorIs(t, s.Delete("a"), store.ErrStoreClosed)
	})
}

func TestStoreContract(t *testing.T) {
	storeContractTest(t, "Memory", func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})

	storeContractTest(t, "SQLite", func(t *testing.T) store.Store {
		s, err := store.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return s
	})
}
