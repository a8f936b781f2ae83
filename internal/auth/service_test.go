package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/itplanet/retail-backend/internal/shared"
)

type sessionRecord struct {
	userID    int64
	expiresAt time.Time
	ip        string
	ua        string
}

type memoryAuthRepo struct {
	users    map[string]*User
	sessions map[string]sessionRecord
	nextID   int64
}

func newMemoryAuthRepo() *memoryAuthRepo {
	return &memoryAuthRepo{users: make(map[string]*User), sessions: make(map[string]sessionRecord)}
}

func (r *memoryAuthRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func (r *memoryAuthRepo) Create(ctx context.Context, username, passwordHash, location string) (*User, error) {
	if _, ok := r.users[username]; ok {
		return nil, shared.ErrUsernameTaken
	}
	r.nextID++
	user := &User{ID: r.nextID, Username: username, PasswordHash: passwordHash, Location: location, IsActive: true}
	r.users[username] = user
	return user, nil
}

func (r *memoryAuthRepo) CreateSession(ctx context.Context, id string, userID int64, expiresAt time.Time, ip, ua string) error {
	r.sessions[id] = sessionRecord{userID: userID, expiresAt: expiresAt, ip: ip, ua: ua}
	return nil
}

func (r *memoryAuthRepo) DeleteSession(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func TestAuthenticate(t *testing.T) {
	repo := newMemoryAuthRepo()
	svc := NewService(repo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["admin"] = &User{ID: 1, Username: "admin", PasswordHash: string(hash), Location: "Nanded", IsActive: true}

	user, err := svc.Authenticate(ctx, "admin", "secret-pass")
	require.NoError(t, err)
	require.Equal(t, "Nanded", user.Location)

	_, err = svc.Authenticate(ctx, "admin", "wrong-pass")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ghost", "secret-pass")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	repo := newMemoryAuthRepo()
	svc := NewService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["former"] = &User{ID: 2, Username: "former", PasswordHash: string(hash), IsActive: false}

	_, err = svc.Authenticate(context.Background(), "former", "secret-pass")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	repo := newMemoryAuthRepo()
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "staff", "long-password", "Latur")
	require.NoError(t, err)
	require.NotEqual(t, "long-password", user.PasswordHash)

	// The stored hash verifies against the original password.
	authenticated, err := svc.Authenticate(ctx, "staff", "long-password")
	require.NoError(t, err)
	require.Equal(t, user.ID, authenticated.ID)

	_, err = svc.Register(ctx, "staff", "another-password", "Latur")
	require.ErrorIs(t, err, shared.ErrUsernameTaken)
}

func TestSessionAuditLifecycle(t *testing.T) {
	repo := newMemoryAuthRepo()
	svc := NewService(repo)
	ctx := context.Background()

	expiresAt := time.Now().Add(time.Hour)
	require.NoError(t, svc.RegisterSession(ctx, "sess-1", 7, expiresAt, "10.0.0.5", "Mozilla/5.0"))

	rec, ok := repo.sessions["sess-1"]
	require.True(t, ok)
	require.Equal(t, int64(7), rec.userID)
	require.Equal(t, "10.0.0.5", rec.ip)
	require.Equal(t, "Mozilla/5.0", rec.ua)

	// Empty client metadata is stored as-is, never dropped.
	require.NoError(t, svc.RegisterSession(ctx, "sess-2", 8, expiresAt, "", ""))
	rec, ok = repo.sessions["sess-2"]
	require.True(t, ok)
	require.Equal(t, "", rec.ip)
	require.Equal(t, "", rec.ua)

	require.NoError(t, svc.RemoveSession(ctx, "sess-1"))
	_, ok = repo.sessions["sess-1"]
	require.False(t, ok)
	_, ok = repo.sessions["sess-2"]
	require.True(t, ok)
}
