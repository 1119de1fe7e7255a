package sessions

import (
	"context"
	"errors"
	"strings"

	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/token"
)

var (
	ErrInvalidInput = errors.New("incomplete values")
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user doesn't exist")
	ErrBadPassword  = errors.New("incorrect password")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// VerifyFunc compara una contraseña en claro contra el hash guardado.
type VerifyFunc func(hash, password string) error

type Service struct {
	users  *users.Service
	hash   users.HashFunc
	verify VerifyFunc
	tokens *token.Service
}

func NewService(usersSvc *users.Service, hash users.HashFunc, verify VerifyFunc, tokens *token.Service) *Service {
	return &Service{
		users:  usersSvc,
		hash:   hash,
		verify: verify,
		tokens: tokens,
	}
}

func (s *Service) TokenTTL() int {
	return int(s.tokens.TTL().Seconds())
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register da de alta la cuenta y devuelve el ID asignado.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Password) == "" {
		return "", ErrInvalidInput
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return "", ErrUserExists
	} else if !errors.Is(err, users.ErrNotFound) {
		return "", err
	}

	hashed, err := s.hash(in.Password)
	if err != nil {
		return "", err
	}

	u, err := s.users.Create(ctx, users.CreateInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashed,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailInUse) {
			return "", ErrUserExists
		}
		return "", err
	}
	return u.ID, nil
}

// Login valida credenciales y emite el token de sesión firmado.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return "", ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := s.verify(u.Password, password); err != nil {
		return "", ErrBadPassword
	}

	return s.tokens.Issue(u.Email, u.FirstName, u.LastName, string(u.Role))
}

// Current verifica el token de la cookie y devuelve sus claims.
func (s *Service) Current(tokenString string) (token.Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return token.Claims{}, ErrInvalidToken
	}
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return token.Claims{}, ErrInvalidToken
	}
	return claims, nil
}
