package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepkick/go-storefront/internal/auth"
	"github.com/stepkick/go-storefront/internal/config"
	"github.com/stepkick/go-storefront/internal/models"
	"github.com/stepkick/go-storefront/internal/storage"
)

var testKeys = config.StorageKeys{
	Cart:     "stepkick-cart",
	Wishlist: "stepkick-wishlist",
	Session:  "stepkick-user",
}

func testConfig() config.AuthConfig {
	return config.AuthConfig{SimulatedLatency: 0, MinPasswordLen: 6}
}

func newSession(t *testing.T) (*auth.Session, *storage.Memory) {
	t.Helper()

	store := storage.NewMemory()
	return auth.New(context.Background(), store, testConfig(), testKeys), store
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	user, err := session.Login(ctx, "alex@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "usr-001", user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Empty(t, user.Password)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, "usr-001", current.ID)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	// unknown email and wrong password yield the same error
	_, unknownErr := session.Login(ctx, "nobody@example.com", "password123")
	_, wrongErr := session.Login(ctx, "alex@example.com", "wrong")

	assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, auth.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Nil(t, session.Current())
}

func TestLoginHonorsCancellation(t *testing.T) {
	store := storage.NewMemory()
	cfg := config.AuthConfig{SimulatedLatency: time.Minute, MinPasswordLen: 6}
	session := auth.New(context.Background(), store, cfg, testKeys)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.Login(ctx, "alex@example.com", "password123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	user, err := session.Register(ctx, "Sam Lee", "sam@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, "Sam Lee", user.Name)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	// the new account is immediately usable for login
	require.NoError(t, session.Logout(ctx))
	again, err := session.Login(ctx, "sam@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	_, err := session.Register(ctx, "Imposter", "alex@example.com", "password456")
	assert.ErrorIs(t, err, auth.ErrEmailExists)
	assert.Nil(t, session.Current())
}

func TestRegisterShortPassword(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	_, err := session.Register(ctx, "Sam Lee", "sam@example.com", "12345")
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	session := auth.New(ctx, store, testConfig(), testKeys)

	_, err := session.Login(ctx, "admin@stepkick.com", "admin123")
	require.NoError(t, err)

	reloaded := auth.New(ctx, store, testConfig(), testKeys)
	current := reloaded.Current()
	require.NotNil(t, current)
	assert.Equal(t, "adm-001", current.ID)
	assert.True(t, reloaded.IsAdmin())
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	session := auth.New(ctx, store, testConfig(), testKeys)

	_, err := session.Login(ctx, "alex@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, session.Logout(ctx))

	assert.Nil(t, session.Current())

	_, err = store.Get(ctx, testKeys.Session)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestUpdateProfileMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	_, err := session.Login(ctx, "alex@example.com", "password123")
	require.NoError(t, err)

	phone := "+1 (555) 000-1111"
	require.NoError(t, session.UpdateProfile(ctx, auth.Update{Phone: &phone}))

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, phone, current.Phone)
	assert.Equal(t, "Alex Johnson", current.Name)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	name := "Ghost"
	assert.ErrorIs(t, session.UpdateProfile(ctx, auth.Update{Name: &name}), auth.ErrNotSignedIn)
}

func TestCorruptStoredSessionDegradesToSignedOut(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, testKeys.Session, []byte("{broken")))

	session := auth.New(ctx, store, testConfig(), testKeys)
	assert.Nil(t, session.Current())
}
