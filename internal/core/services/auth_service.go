package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/utils"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// ErrInvalidCredentials is returned for any authentication failure. The
// caller never learns whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRefreshToken is returned when a refresh token is malformed,
// expired or does not match the stored hash.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// AuthConfig carries the token and OAuth settings the auth service needs.
type AuthConfig struct {
	JWTSecret          string
	JWTIssuer          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

// authServiceImpl implements the AuthSvcFacade interface. Access tokens are
// short-lived JWTs; refresh tokens are opaque strings of the form
// "<userID>.<secret>" where only a bcrypt hash of the secret is stored.
type authServiceImpl struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	userService portssvc.UserSvcFacade
	cfg         AuthConfig
	oauthCfg    *oauth2.Config
}

// NewAuthServiceImpl creates a new authentication service.
func NewAuthServiceImpl(userRepo portsrepo.UserRepositoryFacade, userService portssvc.UserSvcFacade, cfg AuthConfig) portssvc.AuthSvcFacade {
	return &authServiceImpl{
		userRepo:    userRepo,
		userService: userService,
		cfg:         cfg,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{goauth2.UserinfoEmailScope, goauth2.UserinfoProfileScope},
			Endpoint:     googleoauth.Endpoint,
		},
	}
}

var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

func (s *authServiceImpl) Login(ctx context.Context, username string, password string) (*domain.User, *portssvc.AuthTokens, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.AuthProvider != domain.ProviderLocal || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "Login succeeded", slog.String("user_id", user.UserID))
	return user, tokens, nil
}

// GoogleAuthURL builds the consent page redirect URL for the given state.
func (s *authServiceImpl) GoogleAuthURL(state string) string {
	return s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, code string) (*domain.User, *portssvc.AuthTokens, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	oauthService, err := goauth2.NewService(ctx, option.WithTokenSource(s.oauthCfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create oauth client: %w", err)
	}
	info, err := oauthService.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	if info.Id == "" || info.Email == "" {
		return nil, nil, fmt.Errorf("%w: incomplete user info from provider", apperrors.ErrValidation)
	}

	user, err := s.userService.FindOrCreateGoogleUser(ctx, info.Id, info.Email, info.Name)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "Google login succeeded", slog.String("user_id", user.UserID))
	return user, tokens, nil
}

// Refresh validates a refresh token, rotates it and issues a new token pair.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.User, *portssvc.AuthTokens, error) {
	userID, secret, ok := strings.Cut(refreshToken, ".")
	if !ok || userID == "" || secret == "" {
		return nil, nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, ErrInvalidRefreshToken
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.RefreshTokenHash == "" || !utils.CheckPasswordHash(secret, user.RefreshTokenHash) {
		return nil, nil, ErrInvalidRefreshToken
	}
	if user.RefreshTokenExpiresAt == nil || time.Now().UTC().After(*user.RefreshTokenExpiresAt) {
		return nil, nil, ErrInvalidRefreshToken
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.LogDebug(ctx, "Refresh token rotated", slog.String("user_id", user.UserID))
	return user, tokens, nil
}

// Logout clears the stored refresh token so it can no longer be redeemed.
func (s *authServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

// issueTokens mints an access JWT and a fresh refresh token, persisting the
// refresh token's hash. Any previously issued refresh token stops working.
func (s *authServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*portssvc.AuthTokens, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	secret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	hash, err := utils.HashPassword(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(s.cfg.RefreshTokenExpiry)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, &expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &portssvc.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: fmt.Sprintf("%s.%s", user.UserID, secret),
	}, nil
}
