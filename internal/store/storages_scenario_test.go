package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

// runStorageScenario walks the full relational model against a migrated
// database: uniqueness, foreign keys, ordering and cascading deletes.
func runStorageScenario(t *testing.T, s *Storages) {
	t.Helper()

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	buyer := models.User{ID: "u-buyer", FirstName: "Bea", LastName: "Buyer", Email: "bea@estate.test", PasswordHash: "h", Role: models.RoleUser, CreatedAt: base}
	agent := models.User{ID: "u-agent", FirstName: "Al", LastName: "Agent", Email: "al@estate.test", PasswordHash: "h", Role: models.RoleUser, CreatedAt: base.Add(time.Second)}

	require.NoError(t, s.UserRepository.CreateUser(ctx, buyer))
	require.NoError(t, s.UserRepository.CreateUser(ctx, agent))

	dup := buyer
	dup.ID = "u-dup"
	assert.ErrorIs(t, s.UserRepository.CreateUser(ctx, dup), ErrEmailAlreadyExists)

	found, err := s.UserRepository.GetUserByEmail(ctx, "al@estate.test")
	require.NoError(t, err)
	assert.Equal(t, agent.ID, found.ID)

	sell := testProperty("p-sell", models.CategorySell)
	sell.AgentID = agent.ID
	sell.Photos = []string{"1-a.jpg", "2-b.png"}
	sell.PublishedAt = base
	rent := testProperty("p-rent", models.CategoryRent)
	rent.AgentID = agent.ID
	rent.Photos = []string{}
	rent.Equipment = []string{}
	rent.PublishedAt = base.Add(time.Second)

	require.NoError(t, s.PropertyStorage.CreateProperty(ctx, sell))
	require.NoError(t, s.PropertyStorage.CreateProperty(ctx, rent))

	all, err := s.PropertyStorage.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"p-sell", "p-rent"}, []string{all[0].ID, all[1].ID})
	assert.Equal(t, sell.Photos, all[0].Photos)
	assert.Equal(t, sell.Equipment, all[0].Equipment)

	rents, err := s.PropertyStorage.ListPropertiesByCategory(ctx, models.CategoryRent)
	require.NoError(t, err)
	require.Len(t, rents, 1)
	assert.Equal(t, "p-rent", rents[0].ID)

	fav := models.Favorite{ID: "f1", UserID: buyer.ID, PropertyID: sell.ID, AddedAt: base}
	require.NoError(t, s.FavoriteRepository.AddFavorite(ctx, fav))
	fav.ID = "f2"
	assert.ErrorIs(t, s.FavoriteRepository.AddFavorite(ctx, fav), ErrFavoriteAlreadyExists)
	assert.ErrorIs(t, s.FavoriteRepository.AddFavorite(ctx, models.Favorite{ID: "f3", UserID: buyer.ID, PropertyID: "nope", AddedAt: base}), ErrPropertyNotFound)

	favorites, err := s.FavoriteRepository.ListFavorites(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].Property)
	assert.Equal(t, sell.Title, favorites[0].Property.Title)

	require.NoError(t, s.FavoriteRepository.RemoveFavorite(ctx, buyer.ID, sell.ID))
	assert.ErrorIs(t, s.FavoriteRepository.RemoveFavorite(ctx, buyer.ID, sell.ID), ErrFavoriteNotFound)
	require.NoError(t, s.FavoriteRepository.AddFavorite(ctx, models.Favorite{ID: "f4", UserID: buyer.ID, PropertyID: sell.ID, AddedAt: base}))

	require.NoError(t, s.MessageRepository.CreateMessage(ctx, models.Message{
		ID: "m1", SenderID: buyer.ID, ReceiverID: agent.ID, PropertyID: sell.ID, Content: "hello", SentAt: base,
	}))
	inbox, err := s.MessageRepository.ListMessages(ctx, agent.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)

	session := models.Session{ID: "sid", UserID: agent.ID, User: agent.Profile(), CreatedAt: base, ExpiresAt: base.Add(time.Hour)}
	require.NoError(t, s.SessionStore.Save(ctx, session))
	got, err := s.SessionStore.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, agent.Email, got.User.Email)

	promoted, err := s.UserRepository.UpdateRole(ctx, buyer.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	photos, err := s.UserRepository.DeleteUser(ctx, agent.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1-a.jpg", "2-b.png"}, photos)

	_, err = s.PropertyStorage.GetProperty(ctx, sell.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	favorites, err = s.FavoriteRepository.ListFavorites(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
	inbox, err = s.MessageRepository.ListMessages(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// the session outlives its user; resolving it is the caller's concern
	_, err = s.SessionStore.Get(ctx, "sid")
	require.NoError(t, err)

	_, err = s.UserRepository.DeleteUser(ctx, agent.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	n, err := s.SessionStore.DeleteExpired(ctx, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStorages_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		DB:    config.DB{Driver: config.DriverSQLite, DSN: "file:" + filepath.Join(dir, "estate.db")},
		Files: config.Files{PhotoDir: filepath.Join(dir, "uploads")},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.True(t, s.UsesSQLSessions())
	runStorageScenario(t, s)
}

// runConcurrentFavorites adds the same (user, property) pair from several
// goroutines; the store must accept exactly one of them.
func runConcurrentFavorites(t *testing.T, s *Storages) {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	user := models.User{ID: "u-race", FirstName: "Ray", LastName: "Race", Email: "ray@estate.test", PasswordHash: "h", Role: models.RoleUser, CreatedAt: now}
	require.NoError(t, s.UserRepository.CreateUser(ctx, user))
	property := testProperty("p-race", models.CategorySell)
	property.AgentID = user.ID
	property.PublishedAt = now
	require.NoError(t, s.PropertyStorage.CreateProperty(ctx, property))

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.FavoriteRepository.AddFavorite(ctx, models.Favorite{
				ID: fmt.Sprintf("f-race-%d", i), UserID: user.ID, PropertyID: property.ID, AddedAt: now,
			})
		}()
	}
	wg.Wait()

	added := 0
	for _, err := range errs {
		if err == nil {
			added++
			continue
		}
		assert.ErrorIs(t, err, ErrFavoriteAlreadyExists)
	}
	assert.Equal(t, 1, added)

	favorites, err := s.FavoriteRepository.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestStorages_SQLite_ConcurrentFavorites(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{
		DB:    config.DB{Driver: config.DriverSQLite, DSN: "file:" + filepath.Join(dir, "estate.db")},
		Files: config.Files{PhotoDir: filepath.Join(dir, "uploads")},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	runConcurrentFavorites(t, s)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
