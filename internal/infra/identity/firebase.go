// Package identity adapts the hosted identity provider to the domain
// interfaces. Account management and session cookies go through the Admin
// SDK; password verification is only offered by the client-facing REST
// surface, so sign-in goes through the Identity Toolkit API with the
// project's web API key.
package identity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

type firebaseProvider struct {
	auth    *auth.Client
	toolkit *identitytoolkit.RelyingpartyService
	logger  *slog.Logger
}

// ProviderParams holds dependencies for the identity provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseProvider creates an identity provider backed by Firebase
// Authentication.
func NewFirebaseProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	authClient, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	// The Identity Toolkit endpoint authenticates with the web API key, not
	// the service account.
	toolkitService, err := identitytoolkit.NewService(params.Ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Identity Toolkit service")
	}

	params.Logger.Info("Firebase identity provider initialized",
		slog.String("project_id", cfg.ProjectID),
	)

	return &firebaseProvider{
		auth:    authClient,
		toolkit: toolkitService.Relyingparty,
		logger:  params.Logger,
	}, nil
}

func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password string) (*entity.Account, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, errors.Wrap(service.ErrEmailExists, email)
		}

		return nil, p.wrapTransient(err, "failed to create account")
	}

	return &entity.Account{
		ID:    record.UID,
		Email: record.Email,
	}, nil
}

func (p *firebaseProvider) UpdateDisplayName(ctx context.Context, accountID, displayName string) error {
	params := (&auth.UserToUpdate{}).DisplayName(displayName)

	if _, err := p.auth.UpdateUser(ctx, accountID, params); err != nil {
		if auth.IsUserNotFound(err) {
			return errors.Wrap(service.ErrAccountNotFound, accountID)
		}

		return p.wrapTransient(err, "failed to update display name")
	}

	return nil
}

func (p *firebaseProvider) DeleteAccount(ctx context.Context, accountID string) error {
	if err := p.auth.DeleteUser(ctx, accountID); err != nil {
		// Already gone counts as deleted.
		if auth.IsUserNotFound(err) {
			return nil
		}

		return p.wrapTransient(err, "failed to delete account")
	}

	return nil
}

func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	resp, err := p.toolkit.VerifyPassword(req).Context(ctx).Do()
	if err != nil {
		return nil, mapVerifyPasswordError(err)
	}

	return &entity.Session{
		AccountID:   resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		IDToken:     resp.IdToken,
	}, nil
}

func (p *firebaseProvider) IssueSessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	cookie, err := p.auth.SessionCookie(ctx, idToken, ttl)
	if err != nil {
		return "", p.wrapTransient(err, "failed to mint session cookie")
	}

	return cookie, nil
}

func (p *firebaseProvider) VerifySessionCookie(ctx context.Context, cookie string) (*entity.Session, error) {
	token, err := p.auth.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		if auth.IsSessionCookieInvalid(err) || auth.IsSessionCookieExpired(err) ||
			auth.IsSessionCookieRevoked(err) || auth.IsUserDisabled(err) {
			return nil, errors.Wrap(service.ErrSessionInvalid, "session cookie rejected")
		}

		return nil, p.wrapTransient(err, "failed to verify session cookie")
	}

	session := &entity.Session{AccountID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		session.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		session.DisplayName = name
	}

	return session, nil
}

func (p *firebaseProvider) SignOut(ctx context.Context, accountID string) error {
	if err := p.auth.RevokeRefreshTokens(ctx, accountID); err != nil {
		if auth.IsUserNotFound(err) {
			return errors.Wrap(service.ErrAccountNotFound, accountID)
		}

		return p.wrapTransient(err, "failed to revoke refresh tokens")
	}

	return nil
}

// wrapTransient preserves the provider's transience signal so callers can
// tell a retryable backend failure from a permanent one.
func (p *firebaseProvider) wrapTransient(err error, message string) error {
	retryable := errorutils.IsUnavailable(err) ||
		errorutils.IsDeadlineExceeded(err) ||
		errorutils.IsResourceExhausted(err)

	return domainerrors.NewProviderError("provider/backend", message, retryable, err)
}

// mapVerifyPasswordError translates Identity Toolkit REST error codes into
// the domain sentinels. The API reports the code as the message prefix,
// sometimes with trailing advice after a colon.
func mapVerifyPasswordError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return domainerrors.NewProviderError("provider/unreachable", "credential check failed", true, err)
	}

	code := apiErr.Message
	if idx := strings.IndexByte(code, ':'); idx >= 0 {
		code = strings.TrimSpace(code[:idx])
	}

	switch code {
	case "EMAIL_NOT_FOUND":
		return errors.Wrap(service.ErrAccountNotFound, "email not registered")
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return errors.Wrap(service.ErrInvalidPassword, "credential mismatch")
	case "USER_DISABLED":
		return errors.Wrap(service.ErrAccountDisabled, "account disabled by administrator")
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return errors.Wrap(service.ErrTooManyAttempts, "sign-in throttled")
	}

	retryable := apiErr.Code >= 500

	return domainerrors.NewProviderError("provider/"+strings.ToLower(code), apiErr.Message, retryable, err)
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFirebaseProvider),
)
