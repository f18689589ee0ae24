package usersrv

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/iam/auth"
	"github.com/Abraxas-365/recruitboard/pkg/iam/user"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/valx"
	"github.com/google/uuid"
)

// UserService manages operator accounts
type UserService struct {
	userRepo    user.UserRepository
	passwordSvc auth.PasswordService
}

// NewUserService creates a new user service
func NewUserService(userRepo user.UserRepository, passwordSvc auth.PasswordService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// CreateUser hashes the password and stores an active operator with the role's scopes
func (s *UserService) CreateUser(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := valx.Struct(req); err != nil {
		return nil, err
	}

	scopes := auth.ScopesForRole(req.Role)
	if scopes == nil {
		return nil, user.ErrUnknownRole().WithDetail("role", req.Role)
	}

	hash, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	u := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Email:        kernel.Email(strings.ToLower(strings.TrimSpace(req.Email))),
		DisplayName:  kernel.DisplayName(req.DisplayName),
		PhotoURL:     req.PhotoURL,
		PasswordHash: hash,
		Scopes:       scopes,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}
	return u, nil
}
