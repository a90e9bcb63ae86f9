package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"softronix/internal/logger"
	"softronix/internal/models"
	"softronix/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

// Domain errors for auth flows. Handlers surface these as generic messages;
// underlying service detail never reaches the client.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService implements the identity gate: credential checks fail closed,
// profile loads after a successful authentication fail open to a minimal
// session derived from the account record.
type AuthService struct {
	accounts   repository.Accounts
	log        *logger.Logger
	signingKey []byte
}

func NewAuthService(accounts repository.Accounts, log *logger.Logger, signingKey string) *AuthService {
	return &AuthService{accounts: accounts, log: log, signingKey: []byte(signingKey)}
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// SignUp creates the account and its profile document with the default role.
// Any failure leaves the caller unauthenticated.
func (s *AuthService) SignUp(email, password, name string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, errors.New("invalid email address")
	}
	if name == "" {
		name = "User"
	}

	existing, err := s.accounts.GetByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check existing account: %w", err)
	}
	if existing != nil {
		return models.User{}, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	acct := models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(acct); err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        acct.ID,
		Email:     acct.Email,
		Name:      acct.Name,
		Role:      models.DefaultRole,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accounts.SaveProfile(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// SignIn validates credentials and returns a signed session token plus the
// user's profile. Bad credentials always map to ErrInvalidCredentials.
func (s *AuthService) SignIn(email, password string) (string, models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	acct, err := s.accounts.GetByEmail(email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("load account: %w", err)
	}
	if acct == nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := verifyPassword(acct.PasswordHash, password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(acct.ID)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}

	return token, s.resolveProfile(acct), nil
}

// resolveProfile loads the profile document for an authenticated account.
// A missing document is created with the default role; a fetch failure falls
// back to a minimal session rather than blocking access.
func (s *AuthService) resolveProfile(acct *models.Account) models.User {
	minimal := models.User{
		ID:    acct.ID,
		Email: acct.Email,
		Name:  acct.Name,
		Role:  models.DefaultRole,
	}

	profile, err := s.accounts.GetProfile(acct.ID)
	if err != nil {
		if s.log != nil {
			s.log.Warnw("profile_load_failed", "user_id", acct.ID, "err", err)
		}
		return minimal
	}
	if profile == nil {
		minimal.CreatedAt = time.Now().UTC()
		if err := s.accounts.SaveProfile(minimal); err != nil && s.log != nil {
			s.log.Warnw("profile_create_failed", "user_id", acct.ID, "err", err)
		}
		return minimal
	}
	if profile.Role == "" {
		profile.Role = models.DefaultRole
	}
	return *profile
}

// ParseToken parses the session JWT and returns the user id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// CurrentUser resolves the session user for a parsed token. Profile problems
// fail open to an id-only session with the default role.
func (s *AuthService) CurrentUser(userID string) (models.User, error) {
	profile, err := s.accounts.GetProfile(userID)
	if err != nil || profile == nil {
		if err != nil && s.log != nil {
			s.log.Warnw("profile_load_failed", "user_id", userID, "err", err)
		}
		return models.User{ID: userID, Role: models.DefaultRole}, nil
	}
	return *profile, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
