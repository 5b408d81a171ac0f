package state

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSessionStore_LoginReplacesAndPersists(t *testing.T) {
	store := repository.NewMemoryStateRepository()
	sessions := NewSessionStore(store, testLogger())

	_, ok := sessions.Current()
	assert.False(t, ok)

	sessions.Login(domain.Session{UserID: "1", Email: "admin@cyber.com", IsAdmin: true})
	sessions.Login(domain.Session{UserID: "2", Email: "user@cyber.com"})

	current, ok := sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "2", current.UserID)
	assert.False(t, current.IsAdmin)
	assert.False(t, sessions.IsAdmin())

	reloaded := NewSessionStore(store, testLogger())
	restored, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, current, restored)
}

func TestSessionStore_LogoutClearsPersisted(t *testing.T) {
	store := repository.NewMemoryStateRepository()
	sessions := NewSessionStore(store, testLogger())
	sessions.Login(domain.Session{UserID: "1", Email: "a@b.c", AccessToken: "opaque"})
	assert.Equal(t, "opaque", sessions.AccessToken())

	sessions.Logout()

	_, ok := sessions.Current()
	assert.False(t, ok)
	assert.Empty(t, sessions.AccessToken())
	_, err := store.Load(context.Background(), keySession)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestSessionStore_MalformedStateIsLoggedOut(t *testing.T) {
	cases := map[string]string{
		"garbage":       `not-json`,
		"wrong version": `{"version":2,"data":{"id":"1","email":"a@b.c","isAdmin":true}}`,
		"missing id":    `{"version":1,"data":{"email":"a@b.c","isAdmin":true}}`,
		"foreign shape": `{"version":1,"data":{"user":{"email":"a@b.c","isAdmin":true}}}`,
		"admin as text": `{"version":1,"data":{"id":"1","email":"a@b.c","isAdmin":"yes"}}`,
		"null data":     `{"version":1,"data":null}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := repository.NewMemoryStateRepository()
			seedRaw(t, store, keySession, raw)

			sessions := NewSessionStore(store, testLogger())
			_, ok := sessions.Current()
			assert.False(t, ok)
			assert.False(t, sessions.IsAdmin())
		})
	}
}

func TestSessionStore_ExpiredTokenIsLoggedOut(t *testing.T) {
	now := time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStateRepository()

	NewSessionStore(store, testLogger()).Login(domain.Session{
		UserID:      "1",
		Email:       "a@b.c",
		AccessToken: signedToken(t, now.Add(-time.Minute)),
	})

	sessions := newSessionStore(store, testLogger(), func() time.Time { return now })
	_, ok := sessions.Current()
	assert.False(t, ok)
}

func TestSessionStore_LiveTokenIsRestored(t *testing.T) {
	now := time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStateRepository()

	NewSessionStore(store, testLogger()).Login(domain.Session{
		UserID:      "1",
		Email:       "a@b.c",
		AccessToken: signedToken(t, now.Add(time.Hour)),
	})

	sessions := newSessionStore(store, testLogger(), func() time.Time { return now })
	_, ok := sessions.Current()
	assert.True(t, ok)
}

func TestSessionStore_TokenExpiringAtRuntimeLogsOut(t *testing.T) {
	now := time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC)
	store := repository.NewMemoryStateRepository()
	sessions := newSessionStore(store, testLogger(), func() time.Time { return now })

	token := signedToken(t, now.Add(time.Minute))
	sessions.Login(domain.Session{UserID: "1", Email: "a@b.c", IsAdmin: true, AccessToken: token})
	assert.Equal(t, token, sessions.AccessToken())

	now = now.Add(2 * time.Minute)
	_, ok := sessions.Current()
	assert.False(t, ok)
	assert.False(t, sessions.IsAdmin())
	assert.Empty(t, sessions.AccessToken())

	_, err := store.Load(context.Background(), keySession)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}
