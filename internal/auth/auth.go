package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stepkick/go-storefront/internal/config"
	"github.com/stepkick/go-storefront/internal/models"
	"github.com/stepkick/go-storefront/internal/storage"
)

var (
	// ErrInvalidCredentials deliberately does not say whether the email or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrNotSignedIn        = errors.New("not signed in")
)

// Session owns the current user identity. The credential check is a linear
// scan of a fixed mock-user list with a simulated network delay; the signed-in
// user is persisted to the key-value store and reloaded on construction.
type Session struct {
	mu      sync.Mutex
	store   storage.Store
	cfg     config.AuthConfig
	key     string
	users   []models.User
	current *models.User
}

func New(ctx context.Context, store storage.Store, cfg config.AuthConfig, keys config.StorageKeys) *Session {
	s := &Session{
		store: store,
		cfg:   cfg,
		key:   keys.Session,
		users: MockUsers(),
	}

	if data, err := store.Get(ctx, keys.Session); err == nil {
		var user models.User
		if err := json.Unmarshal(data, &user); err == nil && user.ID != "" {
			s.current = &user
		}
	}

	return s
}

// wait simulates network latency, honoring context cancellation.
func (s *Session) wait(ctx context.Context) error {
	if s.cfg.SimulatedLatency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.cfg.SimulatedLatency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			user := u
			user.Password = ""
			s.current = &user

			if err := s.persist(ctx); err != nil {
				return nil, err
			}

			out := user
			return &out, nil
		}
	}

	return nil, ErrInvalidCredentials
}

func (s *Session) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if len(password) < s.cfg.MinPasswordLen {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, s.cfg.MinPasswordLen)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrEmailExists
		}
	}

	user := models.User{
		ID:       "usr-" + uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleUser,
		JoinDate: time.Now().Format("2006-01-02"),
	}
	s.users = append(s.users, user)

	session := user
	session.Password = ""
	s.current = &session

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	out := session
	return &out, nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Update carries optional replacement values for the signed-in profile. Nil
// fields are left untouched.
type Update struct {
	Name    *string
	Avatar  *string
	Phone   *string
	Address *string
}

func (s *Session) UpdateProfile(ctx context.Context, update Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotSignedIn
	}

	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Avatar != nil {
		s.current.Avatar = *update.Avatar
	}
	if update.Phone != nil {
		s.current.Phone = *update.Phone
	}
	if update.Address != nil {
		s.current.Address = *update.Address
	}

	return s.persist(ctx)
}

// Current returns the signed-in user, or nil when unauthenticated.
func (s *Session) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current != nil && s.current.Role == models.RoleAdmin
}

func (s *Session) persist(ctx context.Context) error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
