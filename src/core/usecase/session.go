package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"jokeboard/src/core/domain"
	"jokeboard/src/core/ports"
)

// Messages shown on the login form.
const (
	msgBadCredentials = "Username/Password combination is incorrect"
	msgLoginType      = "Login type invalid"
)

// Login types posted by the login form.
const (
	LoginTypeLogin    = "login"
	LoginTypeRegister = "register"
)

// SessionService resolves identities from session tokens and handles
// login/registration.
type SessionService struct {
	users      ports.UserRepository
	tokens     ports.SessionTokens
	log        *slog.Logger
	bcryptCost int
}

func NewSessionService(users ports.UserRepository, tokens ports.SessionTokens, log *slog.Logger) *SessionService {
	return &SessionService{users: users, tokens: tokens, log: log, bcryptCost: bcrypt.DefaultCost}
}

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func (s *SessionService) WithBcryptCost(cost int) *SessionService {
	s.bcryptCost = cost
	return s
}

// GetUserID returns the user id carried by token, if the token is valid.
func (s *SessionService) GetUserID(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	userID, err := s.tokens.Parse(token)
	if err != nil || userID == "" {
		return "", false
	}
	return userID, true
}

// RequireUserID is GetUserID for protected routes: a missing or invalid
// session yields an unauthorized error that remembers returnTo.
func (s *SessionService) RequireUserID(token, returnTo string) (string, error) {
	userID, ok := s.GetUserID(token)
	if !ok {
		return "", domain.NewLoginRequiredError(returnTo)
	}
	return userID, nil
}

// GetUser loads the user behind token. It returns nil, nil when there is no
// session or the user no longer exists.
func (s *SessionService) GetUser(ctx context.Context, token string) (*domain.User, error) {
	userID, ok := s.GetUserID(token)
	if !ok {
		return nil, nil
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}
	return user, nil
}

// LoginInput is the login form payload.
type LoginInput struct {
	LoginType string
	Username  string
	Password  string
}

// LoginFieldErrors holds per-field login form messages.
type LoginFieldErrors struct {
	Username string
	Password string
}

// Any reports whether at least one field has an error.
func (e LoginFieldErrors) Any() bool {
	return e.Username != "" || e.Password != ""
}

// Validate checks field lengths.
func (in LoginInput) Validate() LoginFieldErrors {
	return LoginFieldErrors{
		Username: domain.ValidateUsername(in.Username),
		Password: domain.ValidatePassword(in.Password),
	}
}

// LoginResult is a successful login or registration.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Authenticate logs in or registers depending on in.LoginType. Bad
// credentials are unauthorized errors, a taken username is a conflict and an
// unknown login type is a validation error on "loginType".
func (s *SessionService) Authenticate(ctx context.Context, in LoginInput) (*LoginResult, error) {
	switch in.LoginType {
	case LoginTypeLogin:
		return s.Login(ctx, in.Username, in.Password)
	case LoginTypeRegister:
		return s.Register(ctx, in.Username, in.Password)
	default:
		return nil, domain.NewValidationError("loginType", msgLoginType)
	}
}

// Login checks credentials and issues a session token.
func (s *SessionService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			s.log.Info("login rejected", "username", username, "reason", "unknown user")
			return nil, domain.NewUnauthorizedError(msgBadCredentials)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.log.Info("login rejected", "username", username, "reason", "bad password")
			return nil, domain.NewUnauthorizedError(msgBadCredentials)
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return s.issue(user)
}

// Register creates a user and issues a session token.
func (s *SessionService) Register(ctx context.Context, username, password string) (*LoginResult, error) {
	_, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, usernameTaken(username)
	case !domain.IsNotFound(err):
		return nil, fmt.Errorf("load user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		if domain.IsConflict(err) {
			return nil, usernameTaken(username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return s.issue(user)
}

func (s *SessionService) issue(user *domain.User) (*LoginResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &LoginResult{User: user, Token: token}, nil
}

func usernameTaken(username string) error {
	return domain.NewConflictError(fmt.Sprintf("User with username %s already exists", username))
}
