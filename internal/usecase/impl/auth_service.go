// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"
	"beacon/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity   service.IdentityProvider
	profiles   service.ProfileStore
	observer   usecase.SessionObserver
	validator  *validation.Validator
	durableTTL time.Duration
	sessionTTL time.Duration
	logger     *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Identity  service.IdentityProvider
	Profiles  service.ProfileStore
	Observer  usecase.SessionObserver
	Validator *validation.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	durableTTL := time.Duration(0)
	sessionTTL := time.Duration(0)
	if params.Config != nil && params.Config.Session != nil {
		durableTTL = params.Config.Session.DurableTTL
		sessionTTL = params.Config.Session.SessionTTL
	}

	return &authService{
		identity:   params.Identity,
		profiles:   params.Profiles,
		observer:   params.Observer,
		validator:  params.Validator,
		durableTTL: durableTTL,
		sessionTTL: sessionTTL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// sessionTTLFor resolves the persistence mode. It runs before any credential
// check: the provider applies the chosen validity to the next sign-in.
func (srv *authService) sessionTTLFor(rememberMe bool) time.Duration {
	if rememberMe {
		return srv.durableTTL
	}

	return srv.sessionTTL
}

// SignUp orchestrates the complete registration process: account creation,
// display-name attachment, profile document write and session establishment.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SessionOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	if err := srv.validator.CheckRegistration(name, email, input.Password); err != nil {
		srv.log(ctx).Warn("Sign-up rejected by validation", slog.String("email", email), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.String("name", name))

	// The name-based login lookup is only unambiguous while display names
	// stay unique, so duplicates are rejected at the door.
	if err := srv.checkNameAvailable(ctx, name); err != nil {
		return nil, err
	}

	account, err := srv.identity.CreateAccount(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Account creation failed", slog.String("email", email), slog.Any("error", err))

		return nil, srv.mapProviderError(err, "failed to create account")
	}

	if err := srv.attachIdentity(ctx, account, name, email); err != nil {
		return nil, err
	}

	// Persistence mode is fixed before the credential check.
	ttl := srv.sessionTTLFor(input.RememberMe)

	session, err := srv.establishSession(ctx, email, input.Password, ttl, input.RememberMe)
	if err != nil {
		srv.log(ctx).Error("Post-registration sign-in failed", slog.String("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	srv.publishState(session, true)
	srv.log(ctx).Debug("Registration completed", slog.String("accountID", account.ID))

	return &usecase.SessionOutput{Session: session}, nil
}

// attachIdentity sets the display name and writes the profile document.
// Any failure after account creation triggers compensating cleanup so no
// orphaned account survives to break the name-based login.
func (srv *authService) attachIdentity(ctx context.Context, account *entity.Account, name, email string) error {
	if err := srv.identity.UpdateDisplayName(ctx, account.ID, name); err != nil {
		srv.compensate(ctx, account.ID, false)

		return errors.Wrap(domainerrors.ErrInternalError.WrapMessage("failed to set display name"), err.Error())
	}

	profile := &entity.Profile{
		AccountID:   account.ID,
		DisplayName: name,
		Email:       email,
	}
	if err := srv.profiles.Save(ctx, profile); err != nil {
		srv.compensate(ctx, account.ID, true)

		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return errors.Wrap(err, "failed to write profile document")
		}

		return errors.Wrap(domainerrors.ErrInternalError.WrapMessage("failed to write profile document"), err.Error())
	}

	return nil
}

// compensate undoes a partial registration. Cleanup failures are logged and
// swallowed; the registration error itself is what the caller reports.
func (srv *authService) compensate(ctx context.Context, accountID string, profileWritten bool) {
	if profileWritten {
		if err := srv.profiles.Delete(ctx, accountID); err != nil && !errors.Is(err, service.ErrProfileNotFound) {
			srv.log(ctx).Error("Failed to delete profile during registration cleanup", slog.String("accountID", accountID), slog.Any("error", err))
		}
	}

	if err := srv.identity.DeleteAccount(ctx, accountID); err != nil {
		srv.log(ctx).Error("Failed to delete account during registration cleanup", slog.String("accountID", accountID), slog.Any("error", err))
	}
}

func (srv *authService) checkNameAvailable(ctx context.Context, name string) error {
	_, err := srv.profiles.FindByDisplayName(ctx, name)
	if err == nil {
		srv.log(ctx).Warn("Display name already taken", slog.String("name", name))

		return errors.WithStack(domainerrors.ErrNameTaken)
	}
	if errors.Is(err, service.ErrProfileNotFound) {
		return nil
	}
	if errors.Is(err, domainerrors.ErrStoreUnavailable) {
		return errors.Wrap(err, "failed to probe display name availability")
	}

	return errors.Wrap(domainerrors.ErrInternalError.WrapMessage("failed to probe display name availability"), err.Error())
}

// SignIn orchestrates the email/password login process.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	email := strings.TrimSpace(input.Email)

	if err := srv.validator.CheckEmailLogin(email, input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	ttl := srv.sessionTTLFor(input.RememberMe)

	session, err := srv.establishSession(ctx, email, input.Password, ttl, input.RememberMe)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.publishState(session, true)
	srv.log(ctx).Debug("Signed in", slog.String("accountID", session.AccountID))

	return &usecase.SessionOutput{Session: session}, nil
}

// SignInByName resolves a display name to an email through the profile store,
// then authenticates with the resolved email. The two backends fail in
// different ways and their failure modes stay distinguishable: an absent
// profile is "User not found", a store outage is retryable, and a credential
// mismatch on the resolved email is "Incorrect password".
func (srv *authService) SignInByName(ctx context.Context, input *usecase.SignInByNameInput) (*usecase.SessionOutput, error) {
	name := strings.TrimSpace(input.Name)

	if err := srv.validator.CheckNameLogin(name, input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Starting sign-in by name", slog.String("name", name))

	email, err := srv.resolveName(ctx, name)
	if err != nil {
		srv.log(ctx).Warn("Name resolution failed", slog.String("name", name), slog.Any("error", err))

		return nil, err
	}

	ttl := srv.sessionTTLFor(input.RememberMe)

	session, err := srv.establishSession(ctx, email, input.Password, ttl, input.RememberMe)
	if err != nil {
		srv.log(ctx).Warn("Sign-in by name failed", slog.String("name", name), slog.Any("error", err))

		return nil, err
	}

	srv.publishState(session, true)
	srv.log(ctx).Debug("Signed in by name", slog.String("accountID", session.AccountID))

	return &usecase.SessionOutput{Session: session}, nil
}

// resolveName translates a display name into the email the provider needs.
// Read-only; when it reports "not found" the flow ends before any
// authentication attempt is made.
func (srv *authService) resolveName(ctx context.Context, name string) (string, error) {
	profile, err := srv.profiles.FindByDisplayName(ctx, name)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return "", errors.Wrap(domainerrors.ErrUserNotFound, "no profile for display name")
		}
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return "", errors.Wrap(err, "failed to resolve display name")
		}

		return "", errors.Wrap(domainerrors.ErrInternalError.WrapMessage("failed to resolve display name"), err.Error())
	}

	return profile.Email, nil
}

// establishSession verifies the credential pair and mints the session cookie
// with the validity chosen beforehand.
func (srv *authService) establishSession(ctx context.Context, email, password string, ttl time.Duration, durable bool) (*entity.Session, error) {
	session, err := srv.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, srv.mapProviderError(err, "credential verification failed")
	}

	cookie, err := srv.identity.IssueSessionCookie(ctx, session.IDToken, ttl)
	if err != nil {
		return nil, srv.mapProviderError(err, "failed to issue session cookie")
	}

	session.Cookie = cookie
	session.Durable = durable
	session.ExpiresAt = time.Now().Add(ttl)

	return session, nil
}

// SignOut revokes the account's sessions. An invalid or expired cookie is
// already signed out; that is success, not failure.
func (srv *authService) SignOut(ctx context.Context, input *usecase.SignOutInput) error {
	session, err := srv.identity.VerifySessionCookie(ctx, input.Cookie)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			srv.log(ctx).Warn("Sign-out with invalid session cookie", slog.Any("error", err))

			return nil
		}

		return srv.mapProviderError(err, "failed to verify session for sign-out")
	}

	if err := srv.identity.SignOut(ctx, session.AccountID); err != nil {
		srv.log(ctx).Error("Failed to revoke sessions", slog.String("accountID", session.AccountID), slog.Any("error", err))

		return srv.mapProviderError(err, "failed to revoke sessions")
	}

	srv.publishState(session, false)
	srv.log(ctx).Info("Signed out", slog.String("accountID", session.AccountID))

	return nil
}

// CurrentSession verifies a session cookie and returns the session it represents.
func (srv *authService) CurrentSession(ctx context.Context, cookie string) (*entity.Session, error) {
	if cookie == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	session, err := srv.identity.VerifySessionCookie(ctx, cookie)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			return nil, errors.Wrap(domainerrors.ErrSessionExpired, "session cookie rejected")
		}

		return nil, srv.mapProviderError(err, "failed to verify session cookie")
	}

	return session, nil
}

// Profile loads the profile document backing the dashboard fields.
func (srv *authService) Profile(ctx context.Context, accountID string) (*entity.Profile, error) {
	profile, err := srv.profiles.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no profile document for account")
		}
		if errors.Is(err, domainerrors.ErrStoreUnavailable) {
			return nil, errors.Wrap(err, "failed to load profile")
		}

		return nil, errors.Wrap(domainerrors.ErrInternalError.WrapMessage("failed to load profile"), err.Error())
	}

	return profile, nil
}

// mapProviderError translates identity-provider sentinels into the fixed
// user-facing table. Unmapped provider errors pass through carrying the raw
// message and their retryable tag.
func (srv *authService) mapProviderError(err error, context string) error {
	switch {
	case errors.Is(err, service.ErrEmailExists):
		return errors.Wrap(domainerrors.ErrEmailInUse, context)
	case errors.Is(err, service.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, context)
	case errors.Is(err, service.ErrInvalidPassword):
		return errors.Wrap(domainerrors.ErrWrongPassword, context)
	case errors.Is(err, service.ErrAccountDisabled):
		return errors.Wrap(domainerrors.ErrAccountDisabled, context)
	case errors.Is(err, service.ErrTooManyAttempts):
		return errors.Wrap(domainerrors.ErrTooManyAttempts, context)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, context)
	}

	return errors.Wrap(domainerrors.ErrInternalError.WrapMessage(context), err.Error())
}

// publishState notifies observers of the new session state for the account.
func (srv *authService) publishState(session *entity.Session, authenticated bool) {
	if srv.observer == nil {
		return
	}

	srv.observer.Publish(entity.SessionState{
		AccountID:     session.AccountID,
		Email:         session.Email,
		DisplayName:   session.DisplayName,
		Authenticated: authenticated,
		ChangedAt:     time.Now(),
	})
}
