package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"folio/internal/platform/metrics"
	"folio/internal/platform/middleware"
	dErrors "folio/pkg/domain-errors"
	"folio/pkg/platform/sentinel"
)

// Service owns credential checks and token issue/validation.
type Service struct {
	users      UserStore
	signingKey []byte
	tokenTTL   time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	clock      func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source for expiry tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

func NewService(users UserStore, signingKey string, tokenTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		users:      users,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		logger:     slog.Default(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an account and returns it with a fresh token. Existing
// username or email yields a conflict.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "please enter all fields")
	}
	if !govalidator.IsEmail(req.Email) {
		return nil, dErrors.New(dErrors.CodeValidation, "please enter a valid email")
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    s.clock().UTC(),
	}
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	return s.issue(user)
}

// Login checks credentials by username or email. An unknown identifier and
// a wrong password produce the identical error so callers cannot probe
// which field was wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResult, error) {
	identifier := strings.TrimSpace(req.Username)
	if identifier == "" || req.Password == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "please enter all fields")
	}

	user, err := s.users.FindByUsername(ctx, identifier)
	if err != nil {
		user, err = s.users.FindByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials()
	}

	if s.metrics != nil {
		s.metrics.Logins.Inc()
	}
	return s.issue(user)
}

// GetUser returns the client-safe account for an authenticated caller.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	pub := user.Public()
	return &pub, nil
}

// ValidateToken implements middleware.TokenValidator.
func (s *Service) ValidateToken(token string) (middleware.Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil || !parsed.Valid {
		return middleware.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "token is not valid")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return middleware.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "token is not valid")
	}
	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return middleware.Identity{}, dErrors.New(dErrors.CodeUnauthorized, "token is not valid")
	}
	role, _ := claims["role"].(string)

	return middleware.Identity{UserID: userID, Role: role}, nil
}

func (s *Service) issue(user *User) (*TokenResult, error) {
	now := s.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return &TokenResult{Token: signed, User: user.Public()}, nil
}

func errInvalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
}
