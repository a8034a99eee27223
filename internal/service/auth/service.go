package auth

import (
	"context"
	"strings"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/pkg/auth"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
	"github.com/medicore/hospital-api/pkg/security"
)

type Service struct {
	users  repository.UserRepository
	jwt    auth.JWTService
	hasher security.PasswordHasher
}

func NewService(users repository.UserRepository, jwt auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		users:  users,
		jwt:    jwt,
		hasher: hasher,
	}
}

// Register creates a patient account. Doctor and admin accounts are
// provisioned out of band.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.BadRequest("email is already registered", nil)
	} else if err != nil && err != repository.ErrNotFound {
		return nil, apperrors.Internal(err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.BadRequest("invalid password", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RolePatient,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err == repository.ErrNotFound {
		return nil, apperrors.Unauthorized(err)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		User:        user,
	}, nil
}

// ValidateToken resolves a bearer token into the request principal.
func (s *Service) ValidateToken(token string) (*model.Principal, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	return &model.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
