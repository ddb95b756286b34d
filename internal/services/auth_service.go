package services

import (
	"context"
	"log"
	"os"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/store"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error)
	ChangePassword(actor string, req request_models.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(req request_models.ConfirmPasswordResetRequest) error
}

type AuthService struct {
	store       *store.Store
	resetTokens mem.ResetTokenStore
	mail        MailServiceInterface
}

// NewAuthService seeds the admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when the store has none (first boot or a backup without credentials).
func NewAuthService(s *store.Store, tokens mem.ResetTokenStore, mail MailServiceInterface) AuthServiceInterface {
	a := &AuthService{store: s, resetTokens: tokens, mail: mail}

	if s.Settings().Admin.Email == "" {
		email := os.Getenv("ADMIN_EMAIL")
		password := os.Getenv("ADMIN_PASSWORD")
		if email != "" && password != "" {
			hash, err := utils.HashPassword(password)
			if err != nil {
				log.Printf("Failed to hash admin password: %v", err)
			} else {
				s.SaveAdminAccount(db_models.AdminAccount{Email: email, PasswordHash: hash})
			}
		} else {
			log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set; admin login disabled until configured")
		}
	}

	return a
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error) {
	admin := a.store.Settings().Admin
	if admin.Email == "" || admin.Email != req.Email {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(admin.PasswordHash, req.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.Email, "admin")
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	return response_models.LoginResponse{Token: token, Email: admin.Email, Role: "admin"}, nil
}

func (a *AuthService) ChangePassword(actor string, req request_models.ChangePasswordRequest) error {
	admin := a.store.Settings().Admin
	if admin.Email == "" {
		return utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(admin.PasswordHash, req.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	a.store.SaveAdminAccount(db_models.AdminAccount{Email: admin.Email, PasswordHash: hash})
	_, _ = a.store.RecordActivity(actor, "update", "Changed admin password",
		db_models.TargetSettings, "admin", nil)

	return nil
}

// RequestPasswordReset always returns nil for unknown emails so the
// endpoint cannot be used to probe for the admin address.
func (a *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	admin := a.store.Settings().Admin
	if admin.Email == "" || admin.Email != email {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	a.resetTokens.Set(token, admin.Email, 30*time.Minute)

	if a.mail == nil {
		return utils.ErrMailNotConfigured
	}
	return a.mail.SendPasswordReset(admin.Email, token)
}

func (a *AuthService) ConfirmPasswordReset(req request_models.ConfirmPasswordResetRequest) error {
	email := a.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrResetTokenInvalid
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	a.store.SaveAdminAccount(db_models.AdminAccount{Email: email, PasswordHash: hash})
	_, _ = a.store.RecordActivity(email, "update", "Reset admin password",
		db_models.TargetSettings, "admin", nil)

	return nil
}
