package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DATCH7/real-estate/internal/config"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

// authService is the concrete implementation of AuthService.
// It registers accounts with bcrypt-hashed passwords and manages opaque
// server-side sessions with a fixed lifetime.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionStore persists sessions; redis or SQL depending on configuration.
	sessionStore store.SessionStore

	validator validators.Validator
	hasher    PasswordHasher
	ids       IDGenerator

	// sessionLifetime is fixed at login and never extended.
	sessionLifetime time.Duration

	// newSessionID returns a random, unguessable session token.
	newSessionID func() string
	now          func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(users store.UserRepository, sessions store.SessionStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  users,
		sessionStore:    sessions,
		validator:       validators.NewRequestValidator(),
		hasher:          utils.NewPasswordHasher(cfg.BcryptCost),
		ids:             utils.NewUUIDGenerator(),
		sessionLifetime: cfg.SessionLifetime,
		newSessionID:    uuid.NewString,
		now:             time.Now,
		logger:          logger,
	}
}

// Signup creates an account with the "user" role. No session is created.
//
// Returns the persisted user or:
//   - a *validators.MissingFieldsError if any of the five fields is blank.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Msg("invalid signup request")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.User{}, err
	}

	user := models.User{
		ID:           a.ids.Generate(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         models.RoleUser,
		CreatedAt:    a.now().UTC(),
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and opens a new session.
//
// Returns the stored session or:
//   - ErrAlreadyLoggedIn if ctx already carries an authenticated user.
//   - a *validators.MissingFieldsError if email or password is blank.
//   - ErrWrongCredentials for an unknown email or a wrong password.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if _, ok := utils.GetUserFromContext(ctx); ok {
		return models.Session{}, ErrAlreadyLoggedIn
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, err
	}

	user, err := a.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Login").Msg("unknown email")
		return models.Session{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
			return models.Session{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("error comparing password")
		return models.Session{}, err
	}

	now := a.now().UTC()
	session := models.Session{
		ID:        a.newSessionID(),
		UserID:    user.ID,
		User:      user.Profile(),
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionLifetime),
	}

	if err = a.sessionStore.Save(ctx, session); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error saving session")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

// Logout destroys the session. An empty id is not an error.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := a.sessionStore.Delete(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("error deleting session")
		return err
	}

	return nil
}

func (a *authService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	session, err := a.sessionStore.Get(ctx, sessionID)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Warn().Str("func", "*authService.ResolveSession").Str("user_id", session.UserID).Msg("session points at a deleted user")
		return models.User{}, ErrStaleSession
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// EnsureAdmin makes sure an admin account with the given email exists.
// A missing account is created; an existing "user" account is promoted and
// keeps its password. Empty credentials disable the bootstrap.
func (a *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return nil
	}

	existing, err := a.userRepository.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role.IsAdmin() {
			return nil
		}
		if _, err = a.userRepository.UpdateRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return fmt.Errorf("error promoting bootstrap admin: %w", err)
		}
		log.Info().Str("func", "*authService.EnsureAdmin").Str("email", email).Msg("existing user promoted to admin")
		return nil
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("error looking up bootstrap admin: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           a.ids.Generate(),
		FirstName:    "Admin",
		LastName:     "",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    a.now().UTC(),
	}
	if err = a.userRepository.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}
	log.Info().Str("func", "*authService.EnsureAdmin").Str("email", email).Msg("bootstrap admin created")

	return nil
}
