package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"storefront/internal/clients"
	"storefront/internal/domain"
	"storefront/internal/state"
)

var _ domain.AuthUseCase = (*authUseCase)(nil)

type authUseCase struct {
	api      clients.StorefrontAPI
	sessions *state.SessionStore
	validate *validator.Validate
	log      *logrus.Logger
}

func NewAuthUseCase(api clients.StorefrontAPI, sessions *state.SessionStore, logger *logrus.Logger) domain.AuthUseCase {
	return &authUseCase{
		api:      api,
		sessions: sessions,
		validate: newFormValidator(),
		log:      logger,
	}
}

func (uc *authUseCase) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validateForm(uc.validate, creds); err != nil {
		uc.log.Warnf("Use Case: Rejected login form: %v", err)
		return domain.Session{}, err
	}

	uc.log.Infof("Use Case: Attempting login for %s", creds.Email)
	payload, err := uc.api.Login(ctx, creds)
	if err != nil {
		uc.log.Warnf("Use Case: Login failed for %s: %v", creds.Email, err)
		return domain.Session{}, fmt.Errorf("login failed: %w", err)
	}
	return uc.startSession(payload)
}

func (uc *authUseCase) Register(ctx context.Context, reg domain.Registration) (domain.Session, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Username = strings.TrimSpace(reg.Username)
	if reg.Password != reg.ConfirmPassword {
		uc.log.Warnf("Use Case: Registration for %s rejected, password confirmation mismatch", reg.Email)
		return domain.Session{}, domain.ErrPasswordConfirmation
	}
	if err := validateForm(uc.validate, reg); err != nil {
		uc.log.Warnf("Use Case: Rejected registration form: %v", err)
		return domain.Session{}, err
	}

	uc.log.Infof("Use Case: Registering user '%s' (%s)", reg.Username, reg.Email)
	payload, err := uc.api.Register(ctx, reg)
	if err != nil {
		uc.log.Warnf("Use Case: Registration failed for %s: %v", reg.Email, err)
		return domain.Session{}, fmt.Errorf("registration failed: %w", err)
	}
	return uc.startSession(payload)
}

func (uc *authUseCase) startSession(payload domain.AuthPayload) (domain.Session, error) {
	session := payload.Session()
	if !session.Valid() {
		uc.log.Errorf("Use Case: Backend returned an incomplete user (id=%q, email=%q)", session.UserID, session.Email)
		return domain.Session{}, &clients.GraphQLError{Operation: "auth", Messages: []string{"incomplete user in response"}}
	}
	uc.sessions.Login(session)
	uc.log.Infof("Use Case: Session started for user %s (admin=%t)", session.UserID, session.IsAdmin)
	return session, nil
}

func (uc *authUseCase) VerifyEmail(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, fmt.Errorf("%w: no verification token provided", domain.ErrValidation)
	}

	user, err := uc.api.VerifyEmail(ctx, token)
	if err != nil {
		uc.log.Warnf("Use Case: Email verification failed: %v", err)
		return domain.User{}, fmt.Errorf("email verification failed: %w", err)
	}
	uc.log.Infof("Use Case: Email verified for user '%s'", user.Username)
	return user, nil
}

func (uc *authUseCase) Logout() {
	uc.sessions.Logout()
}

func (uc *authUseCase) CurrentSession() (domain.Session, bool) {
	return uc.sessions.Current()
}
