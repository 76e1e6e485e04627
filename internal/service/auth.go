// Package service holds the business logic between the HTTP handlers and the
// repositories.
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"outreach/internal/apperror"
	"outreach/internal/config"
	"outreach/internal/model"
	"outreach/internal/repository"
	"outreach/pkg/util"
)

// Claims are the JWT claims carried by an idToken. Subject is the account id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIdentity is the verified identity extracted from a bearer token.
type TokenIdentity struct {
	UID   primitive.ObjectID
	Email string
}

// AuthService is the identity gateway: it issues and verifies idTokens and
// resolves roles from the mirrored user documents.
type AuthService struct {
	cfg      *config.Config
	accounts repository.IAccountRepository
	users    repository.IUserRepository
	log      *zap.Logger
}

func NewAuthService(cfg *config.Config, log *zap.Logger, accounts repository.IAccountRepository, users repository.IUserRepository) *AuthService {
	return &AuthService{cfg: cfg, accounts: accounts, users: users, log: log}
}

// Login verifies credentials and returns a signed idToken.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if !s.cfg.Auth.Configured() {
		return "", apperror.New(apperror.BackendUnavailable, "authentication is not configured")
	}
	if email == "" || password == "" {
		return "", apperror.New(apperror.InvalidInput, "email and password are required")
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if account == nil || !util.VerifyPassword(password, account.PasswordHash) {
		return "", apperror.New(apperror.Unauthenticated, "invalid email or password")
	}

	// Best effort; a failed stamp must not block the login.
	if err := s.users.UpdateFields(ctx, account.ID, bson.M{"lastLogin": time.Now()}); err != nil {
		s.log.Warn("failed to stamp lastLogin", zap.String("uid", account.ID.Hex()), zap.Error(err))
	}

	return s.GenerateToken(account.ID, account.Email)
}

// GenerateToken signs an idToken for the account.
func (s *AuthService) GenerateToken(uid primitive.ObjectID, email string) (string, error) {
	if !s.cfg.Auth.Configured() {
		return "", apperror.New(apperror.BackendUnavailable, "authentication is not configured")
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.Hex(),
			Issuer:    s.cfg.Auth.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Auth.TokenTTLMin) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", apperror.Wrap(apperror.UpstreamFailure, "failed to sign token", err)
	}
	return signed, nil
}

// VerifyToken validates an idToken and returns the identity it proves.
func (s *AuthService) VerifyToken(tokenString string) (*TokenIdentity, error) {
	if !s.cfg.Auth.Configured() {
		return nil, apperror.New(apperror.BackendUnavailable, "authentication is not configured")
	}
	if tokenString == "" {
		return nil, apperror.New(apperror.Unauthenticated, "missing credential")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Newf(apperror.Unauthenticated, "unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Wrap(apperror.Unauthenticated, "invalid or expired token", err)
	}

	uid, err := util.ParseObjectID(claims.Subject)
	if err != nil {
		return nil, apperror.Wrap(apperror.Unauthenticated, "malformed token subject", err)
	}
	return &TokenIdentity{UID: uid, Email: claims.Email}, nil
}

// ResolveRole reads the mirrored user document for uid. A missing document or
// an empty role field resolves to staff.
func (s *AuthService) ResolveRole(ctx context.Context, uid primitive.ObjectID) (string, error) {
	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			return model.RoleStaff, nil
		}
		return "", err
	}
	return user.EffectiveRole(), nil
}
