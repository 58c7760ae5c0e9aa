package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/pkg/utils"

	"github.com/google/uuid"
)

// UserStore is the persistence surface the auth service needs for users.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Create(user *models.User) error
}

// SessionStore abstracts the server-side session state: create, read,
// destroy, and the login-time regeneration that defends against fixation.
type SessionStore interface {
	Create(token string, sess *models.Session) error
	Find(token string) (*models.Session, error)
	Destroy(token string) error
	Regenerate(oldToken, newToken string, sess *models.Session) error
}

type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAuthService(users UserStore, sessions SessionStore, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// RegisterInput carries the registration fields as received from the client.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	UserType string
	Name     string
}

// UserProfile is the safe subset of a user record returned after login.
// The password hash never leaves the service.
type UserProfile struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	UserType string `json:"user_type"`
	Name     string `json:"name"`
}

// LoginResult couples the issued session token with the user's profile.
type LoginResult struct {
	Token string
	User  UserProfile
}

// Register validates and persists a new user. The raw password is hashed
// with bcrypt and never stored or logged. Error strings are part of the
// wire contract and surface verbatim to the client.
func (s *AuthService) Register(in RegisterInput) error {
	username := utils.SanitizeText(in.Username)
	email := utils.SanitizeText(in.Email)
	userType := utils.SanitizeText(in.UserType)
	name := utils.SanitizeText(in.Name)

	if username == "" || email == "" || in.Password == "" || userType == "" {
		return errors.New("All fields are required")
	}

	// Friendly pre-check; the unique index catches concurrent duplicates.
	if _, err := s.users.FindByUsername(username); err == nil {
		return errors.New("Username already exists")
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		UserType:     userType,
		Name:         name,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return errors.New("Username already exists")
		}
		return errors.New("Registration failed")
	}

	return nil
}

// Login verifies credentials and issues a fresh session. An unknown
// username and a wrong password produce the identical error string so the
// response does not reveal which usernames exist. priorToken, when
// non-empty, names a session to invalidate as part of regeneration.
func (s *AuthService) Login(username, password, priorToken string) (*LoginResult, error) {
	username = utils.SanitizeText(username)

	if username == "" || password == "" {
		return nil, errors.New("Username and password are required")
	}

	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, errors.New("Invalid username or password")
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errors.New("Invalid username or password")
	}

	now := time.Now()
	token := uuid.NewString()
	sess := &models.Session{
		UserID:    user.UserID,
		Username:  user.Username,
		UserType:  user.UserType,
		Name:      user.Name,
		LoginTime: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Regenerate(priorToken, token, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{
		Token: token,
		User: UserProfile{
			UserID:   user.UserID,
			Username: user.Username,
			UserType: user.UserType,
			Name:     user.Name,
		},
	}, nil
}

// Logout destroys the session named by token. It succeeds unconditionally;
// an absent or unknown token leaves nothing to destroy.
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	_ = s.sessions.Destroy(token)
}

// CurrentUser resolves a session token to the logged-in user's profile.
func (s *AuthService) CurrentUser(token string) (*UserProfile, error) {
	sess, err := s.sessions.Find(token)
	if err != nil {
		return nil, err
	}
	return &UserProfile{
		UserID:   sess.UserID,
		Username: sess.Username,
		UserType: sess.UserType,
		Name:     sess.Name,
	}, nil
}
