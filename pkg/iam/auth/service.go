package auth

import (
	"context"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
	"github.com/Abraxas-365/recruitboard/pkg/iam/user"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/pkg/logx"
)

// SignInResult is returned after a successful sign in
type SignInResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        user.Profile `json:"user"`
}

// AuthService is the identity provider: sign in, sign out and current user
type AuthService struct {
	userRepo    user.UserRepository
	tokens      TokenService
	passwordSvc PasswordService
	denylist    TokenDenylist
}

// NewAuthService creates the identity service
func NewAuthService(
	userRepo user.UserRepository,
	tokens TokenService,
	passwordSvc PasswordService,
	denylist TokenDenylist,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokens:      tokens,
		passwordSvc: passwordSvc,
		denylist:    denylist,
	}
}

// SignIn checks the credentials and issues an access token
func (s *AuthService) SignIn(ctx context.Context, email kernel.Email, password string) (*SignInResult, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errx.IsCode(err, user.CodeUserNotFound) {
			return nil, ErrInvalidCredentials()
		}
		return nil, errx.Wrap(err, "failed to load user", errx.TypeInternal)
	}

	if !s.passwordSvc.Verify(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials()
	}
	if !u.IsActive() {
		return nil, user.ErrUserSuspended().WithDetail("user_id", u.ID.String())
	}

	token, claims, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.Scopes)
	if err != nil {
		return nil, errx.Wrap(err, "failed to issue token", errx.TypeInternal)
	}

	logx.Infof("user %s signed in", u.ID)
	return &SignInResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt,
		User:        u.ToProfile(),
	}, nil
}

// SignOut revokes the token until its natural expiry
func (s *AuthService) SignOut(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.denylist == nil || tokenID == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		return errx.Wrap(err, "failed to revoke token", errx.TypeExternal)
	}
	return nil
}

// Me returns the profile of the authenticated user
func (s *AuthService) Me(ctx context.Context, userID kernel.UserID) (*user.Profile, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load user", errx.TypeInternal)
	}
	profile := u.ToProfile()
	return &profile, nil
}
