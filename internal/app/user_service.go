package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"postline/internal/model"
	"postline/internal/pkg/jwtutil"
	"postline/internal/pkg/password"
	"postline/internal/repository"
)

const (
	maxUsernameLength  = 55
	maxBiographyLength = 200
)

// UserService owns the user records and the authentication entry points.
type UserService struct {
	users         UserStore
	revoker       TokenRevoker
	sessionSecret string
	resetSecret   string
	tokenTTL      time.Duration
}

type RegisterInput struct {
	Username  string
	Password1 string
	Password2 string
	Biography *string
}

type UserPatch struct {
	Username  *string
	Biography *string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewUserService(
	users UserStore,
	revoker TokenRevoker,
	sessionSecret string,
	resetSecret string,
	tokenTTL time.Duration,
) *UserService {
	return &UserService{
		users:         users,
		revoker:       revoker,
		sessionSecret: sessionSecret,
		resetSecret:   resetSecret,
		tokenTTL:      tokenTTL,
	}
}

// Register validates the password pair before hashing; the confirmation
// value is never persisted. The username unique constraint is the
// authoritative guard, the lookup only gives a friendlier fast path.
func (s *UserService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || len(username) > maxUsernameLength {
		return nil, ErrInvalidInput
	}
	if input.Biography != nil && len(*input.Biography) > maxBiographyLength {
		return nil, ErrInvalidInput
	}

	if err := password.ValidatePair(input.Password1, input.Password2); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hash, err := password.Hash(input.Password1)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Biography:    input.Biography,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(username, plaintext string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || plaintext == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.sessionSecret, s.tokenTTL, user.UUID.String(), user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *UserService) GetByID(id uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetAuth(id uuid.UUID) (*model.UserAuth, error) {
	auth, err := s.users.GetAuth(id)
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, ErrUserNotFound
	}
	return auth, nil
}

// Patch applies only the fields present in the payload. Only the acting
// identity may patch its own record.
func (s *UserService) Patch(actingID, targetID uuid.UUID, patch UserPatch) (*model.User, error) {
	if actingID != targetID {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{}
	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" || len(username) > maxUsernameLength {
			return nil, ErrInvalidInput
		}
		fields["username"] = username
	}
	if patch.Biography != nil {
		if len(*patch.Biography) > maxBiographyLength {
			return nil, ErrInvalidInput
		}
		fields["biography"] = *patch.Biography
	}

	if err := s.users.UpdateFields(targetID, fields); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return s.GetByID(targetID)
}

// ResetPassword accepts a token signed with the reset secret. A session
// token presented here fails signature verification. On success any
// outstanding session tokens are revoked.
func (s *UserService) ResetPassword(ctx context.Context, resetToken, password1, password2 string) error {
	claims, err := jwtutil.ParseToken(s.resetSecret, resetToken)
	if err != nil {
		return ErrForbidden
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ErrForbidden
	}

	if err := password.ValidatePair(password1, password2); err != nil {
		return err
	}

	hash, err := password.Hash(password1)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(userID, hash); err != nil {
		return err
	}

	if s.revoker != nil {
		if err := s.revoker.RevokeAll(ctx, userID.String(), s.tokenTTL); err != nil {
			return err
		}
	}
	return nil
}

// IssueResetToken signs a short-lived token in the reset domain. The
// delivery channel (email) is outside this service.
func (s *UserService) IssueResetToken(userID uuid.UUID) (string, error) {
	return jwtutil.GenerateToken(s.resetSecret, s.tokenTTL, userID.String(), "")
}

func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	if s.revoker == nil {
		return nil
	}
	return s.revoker.RevokeAll(ctx, userID.String(), s.tokenTTL)
}

// Delete removes the acting user's own record; posts and subscription
// edges disappear through the datastore cascades.
func (s *UserService) Delete(actingID, targetID uuid.UUID) error {
	if actingID != targetID {
		return ErrForbidden
	}
	return s.users.Delete(targetID)
}
