package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks

// bcrypt ignora tudo após 72 bytes
const maxPasswordBytes = 72

type Authenticator interface {
	Signup(ctx context.Context, credentials domain.Credentials) (*domain.Principal, error)
	CreateAdmin(ctx context.Context, credentials domain.Credentials) (*domain.Principal, error)
	Login(ctx context.Context, credentials domain.Credentials) (*domain.Session, error)
	ValidateToken(tokenString string) (*domain.Principal, error)
}

type Service struct {
	principalRepo repository.PrincipalRepository
	secret        []byte
	sessionTTL    time.Duration
	hashCost      int
	now           func() time.Time
}

func NewService(principalRepo repository.PrincipalRepository, cfg config.Auth) Authenticator {
	return &Service{
		principalRepo: principalRepo,
		secret:        []byte(cfg.Secret),
		sessionTTL:    cfg.SessionTTL,
		hashCost:      bcrypt.DefaultCost,
		now:           time.Now,
	}
}

// Signup cria sempre um principal viewer; não existe auto cadastro de admin
func (s *Service) Signup(ctx context.Context, credentials domain.Credentials) (*domain.Principal, error) {
	return s.createPrincipal(ctx, credentials, domain.RoleViewer)
}

// CreateAdmin é usado apenas pela CLI de operação
func (s *Service) CreateAdmin(ctx context.Context, credentials domain.Credentials) (*domain.Principal, error) {
	return s.createPrincipal(ctx, credentials, domain.RoleAdmin)
}

func (s *Service) createPrincipal(ctx context.Context, credentials domain.Credentials, role domain.Role) (*domain.Principal, error) {
	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Username and password are required")
	}

	if len(credentials.Password) > maxPasswordBytes {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}

	existing, err := s.principalRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error creating user")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), s.hashCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Error creating user")
	}

	principal, err := s.principalRepo.Insert(ctx, &domain.Principal{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if err != nil {
		// Corrida entre dois cadastros com o mesmo username
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Username already exists")
		}
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error creating user")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":   principal.ID,
		"user_role": principal.Role,
	}).Info("Principal criado")

	return principal, nil
}

func (s *Service) Login(ctx context.Context, credentials domain.Credentials) (*domain.Session, error) {
	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid credentials")
	}

	principal, err := s.principalRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error checking credentials")
	}

	if principal == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(credentials.Password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid credentials")
	}

	expiresAt := s.now().Add(s.sessionTTL)
	token, err := s.generateJWT(principal, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Error issuing session")
	}

	principal.PasswordHash = ""

	return &domain.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Principal: principal,
	}, nil
}

func (s *Service) generateJWT(principal *domain.Principal, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		PrincipalID: principal.ID,
		Username:    principal.Username,
		Role:        principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(principal.ID, 10),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken converte um token de sessão assinado no Principal correspondente
func (s *Service) ValidateToken(tokenString string) (*domain.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrUnauthenticated, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || !claims.Role.Valid() || claims.Username == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrUnauthenticated, "")
	}

	return claims.Principal(), nil
}
