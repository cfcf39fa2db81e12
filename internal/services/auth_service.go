package services

import (
	"context"
	"crypto/subtle"
	"strings"

	"go.uber.org/zap"

	"storefront-service/internal/auth"
	"storefront-service/internal/domain"
)

const (
	defaultAdminEmail    = "admin@minishop.com"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Admin"

	demoUserID = 1
)

var demoLoginIdentity = domain.Identity{ID: demoUserID, Email: "demo@admin.com", Name: "Demo Admin", Role: domain.RoleAdmin}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Session is what a successful login, registration or seed hands back.
type Session struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
	Demo  bool            `json:"-"`
}

type SeedResult struct {
	Created bool
	Session *Session
	Email   string
	// Password is echoed only when an account was created.
	Password string
}

type AuthService struct {
	stores      *StoreSelector
	tokens      *auth.Tokens
	demoEnabled bool
	seedSecret  string
	log         *zap.Logger
}

func NewAuthService(stores *StoreSelector, tokens *auth.Tokens, demoEnabled bool, seedSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{stores: stores, tokens: tokens, demoEnabled: demoEnabled, seedSecret: seedSecret, log: logger}
}

// Verify resolves a bearer credential to the identity it carries.
func (s *AuthService) Verify(token string) (domain.Identity, error) {
	return s.tokens.Verify(token)
}

func (s *AuthService) Register(ctx context.Context, in Credentials) (*Session, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "All fields are required")
	}

	store := s.stores.Select(ctx, "register")
	if store.Demo() {
		return s.demoSession(domain.Identity{ID: demoUserID, Email: in.Email, Name: in.Name, Role: domain.RoleAdmin})
	}

	users := store.Users()
	existing, err := users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrConflict, "User already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Email: in.Email, Password: hash, Name: in.Name, Role: domain.RoleAdmin}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Uint64("user_id", u.ID))
	return s.session(u.Identity(), false)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Email and password are required")
	}

	store := s.stores.Select(ctx, "login")
	if store.Demo() {
		return s.demoSession(demoLoginIdentity)
	}

	u, err := store.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !auth.CheckPassword(u.Password, password) {
		return nil, domain.Errorf(domain.ErrUnauthorized, "Invalid credentials")
	}
	return s.session(u.Identity(), false)
}

// Me returns the stored account behind id. Without a database the
// credential's own claims are all there is.
func (s *AuthService) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	store := s.stores.Select(ctx, "me")
	if store.Demo() {
		return &domain.User{ID: id.ID, Email: id.Email, Name: id.Name, Role: id.Role}, nil
	}

	u, err := store.Users().FindByID(ctx, id.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "User not found")
	}
	return u, nil
}

// SeedAdmin creates the first admin account. It is a no-op when any admin
// already exists.
func (s *AuthService) SeedAdmin(ctx context.Context, secret string, in Credentials) (*SeedResult, error) {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.seedSecret)) != 1 {
		return nil, domain.Errorf(domain.ErrForbidden, "Invalid seed secret")
	}

	email := firstNonEmpty(in.Email, defaultAdminEmail)
	password := firstNonEmpty(in.Password, defaultAdminPassword)
	name := firstNonEmpty(in.Name, defaultAdminName)

	store := s.stores.Select(ctx, "seedAdmin")
	if store.Demo() {
		return nil, domain.Errorf(domain.ErrUnavailable, "Database not available")
	}

	users := store.Users()
	exists, err := users.HasRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if exists {
		return &SeedResult{Created: false, Email: email}, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Email: email, Password: hash, Name: name, Role: domain.RoleAdmin}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}

	sess, err := s.session(u.Identity(), false)
	if err != nil {
		return nil, err
	}
	s.log.Info("admin account seeded", zap.String("email", email))
	return &SeedResult{Created: true, Session: sess, Email: email, Password: password}, nil
}

func (s *AuthService) demoSession(id domain.Identity) (*Session, error) {
	if !s.demoEnabled {
		return nil, domain.Errorf(domain.ErrUnavailable, "Database not available")
	}
	s.log.Warn("issuing demo credential", zap.String("email", id.Email))
	return s.session(id, true)
}

func (s *AuthService) session(id domain.Identity, demo bool) (*Session, error) {
	tok, err := s.tokens.Issue(id)
	if err != nil {
		return nil, err
	}
	return &Session{Token: tok, User: id, Demo: demo}, nil
}

func firstNonEmpty(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
