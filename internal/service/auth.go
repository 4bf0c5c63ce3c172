package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dtroode/watchlist-server/internal/logger"
	"github.com/dtroode/watchlist-server/internal/model"
)

// unknownUserPassword is hashed once and checked on sign in attempts for
// usernames that do not exist, so both paths cost one bcrypt compare.
const unknownUserPassword = "watchlist-unknown-user"

// Auth registers users and manages their sessions.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	validate     *validator.Validate
	logger       *logger.Logger
	now          func() time.Time

	unknownUserOnce sync.Once
	unknownUserHash []byte
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		validate:     newValidator(),
		logger:       logger,
		now:          time.Now,
	}
}

func (a *Auth) SignUp(ctx context.Context, params model.SignUpParams) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", params.Username)

	if err := a.validate.Struct(params); err != nil {
		a.logger.Info("Auth service: registration rejected",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, validationError(err)
	}

	if err := a.ensureAvailable(ctx, params.Username, params.Email); err != nil {
		return model.User{}, err
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		if errors.Is(err, model.ErrPasswordTooLong) {
			return model.User{}, fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
		}
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: user already exists",
				"username", params.Username)
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"username", user.Username,
		"user_id", user.ID)

	return user, nil
}

func (a *Auth) ensureAvailable(ctx context.Context, username, email string) error {
	_, err := a.userStore.GetByUsername(ctx, username)
	if err == nil {
		a.logger.Info("Auth service: username already taken", "username", username)
		return fmt.Errorf("username %q: %w", username, model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	_, err = a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already taken", "username", username)
		return fmt.Errorf("email %q: %w", email, model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	return nil
}

// SignIn checks credentials and opens a new session.
func (a *Auth) SignIn(ctx context.Context, username, password string) (model.IssuedSession, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	user, err := a.checkCredentials(ctx, username, password)
	if err != nil {
		return model.IssuedSession{}, err
	}

	identity := model.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		SessionID: uuid.New(),
	}

	token, expiresAt, err := a.tokenManager.GenerateAccessToken(identity)
	if err != nil {
		return model.IssuedSession{}, fmt.Errorf("failed to issue token: %w", err)
	}

	session := model.Session{
		ID:        identity.SessionID,
		UserID:    user.ID,
		IssuedAt:  a.now(),
		ExpiresAt: expiresAt,
	}
	if err := a.sessionStore.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to persist session",
			"user_id", user.ID,
			"error", err.Error())
		return model.IssuedSession{}, fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID,
		"session_id", session.ID)

	return model.IssuedSession{Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a token into the caller identity. Every failure is
// reported as model.ErrUnauthorized.
func (a *Auth) Authenticate(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, fmt.Errorf("%w: missing token", model.ErrUnauthorized)
	}

	identity, err := a.tokenManager.ParseAccessToken(token)
	if err != nil {
		return model.Identity{}, err
	}

	session, err := a.sessionStore.GetByID(ctx, identity.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Identity{}, fmt.Errorf("%w: unknown session", model.ErrUnauthorized)
		}
		a.logger.Error("Auth service: failed to get session",
			"session_id", identity.SessionID,
			"error", err.Error())
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}

	if session.UserID != identity.UserID || !session.Active(a.now()) {
		return model.Identity{}, fmt.Errorf("%w: session is no longer active", model.ErrUnauthorized)
	}

	return identity, nil
}

// SignOut revokes the caller's session. Signing out twice is not an error.
func (a *Auth) SignOut(ctx context.Context, identity model.Identity) error {
	if identity.SessionID == uuid.Nil {
		return nil
	}

	if err := a.sessionStore.Revoke(ctx, identity.SessionID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.logger.Info("Auth service: logout completed",
		"user_id", identity.UserID,
		"session_id", identity.SessionID)

	return nil
}

// ResetPassword replaces the password after checking the old one and ends
// every open session of the user.
func (a *Auth) ResetPassword(ctx context.Context, params model.ResetPasswordParams) error {
	a.logger.Debug("Auth service: starting password reset",
		"username", params.Username)

	if err := a.validate.Struct(params); err != nil {
		return validationError(err)
	}

	user, err := a.checkCredentials(ctx, params.Username, params.OldPassword)
	if err != nil {
		return err
	}

	hash, err := a.hasher.Hash(params.NewPassword)
	if err != nil {
		if errors.Is(err, model.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userStore.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := a.sessionStore.RevokeAllByUser(ctx, user.ID); err != nil {
		a.logger.Error("Auth service: failed to revoke sessions after password reset",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	a.logger.Info("Auth service: password reset completed",
		"user_id", user.ID)

	return nil
}

func (a *Auth) checkCredentials(ctx context.Context, username, password string) (model.User, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: unknown username", "username", username)
		a.hasher.Verify(password, a.placeholderHash())
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: wrong password", "username", username)
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

func (a *Auth) placeholderHash() []byte {
	a.unknownUserOnce.Do(func() {
		hash, err := a.hasher.Hash(unknownUserPassword)
		if err != nil {
			a.logger.Error("Auth service: failed to hash placeholder password",
				"error", err.Error())
			return
		}
		a.unknownUserHash = hash
	})
	return a.unknownUserHash
}
