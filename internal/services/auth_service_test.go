package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/store"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

func storeWithAdmin(t *testing.T, email, password string) *store.Store {
	t.Helper()
	s := newTestStore()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	s.SaveAdminAccount(db_models.AdminAccount{Email: email, PasswordHash: hash})
	return s
}

func TestLogin(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "hunter2secret")
	svc := NewAuthService(s, mem.NewResetTokens(), nil)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@voyago.test",
		Password: "hunter2secret",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("no token issued")
	}
	if resp.Role != "admin" {
		t.Errorf("role = %q", resp.Role)
	}

	claims, err := utils.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "admin@voyago.test" {
		t.Errorf("claims email = %q", claims.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "hunter2secret")
	svc := NewAuthService(s, mem.NewResetTokens(), nil)

	tests := []struct {
		name string
		req  request_models.LoginRequest
	}{
		{"wrong password", request_models.LoginRequest{Email: "admin@voyago.test", Password: "nope"}},
		{"unknown email", request_models.LoginRequest{Email: "other@voyago.test", Password: "hunter2secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tt.req); !errors.Is(err, utils.ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "oldpassword1")
	svc := NewAuthService(s, mem.NewResetTokens(), nil)

	err := svc.ChangePassword("admin@voyago.test", request_models.ChangePasswordRequest{
		CurrentPassword: "oldpassword1",
		NewPassword:     "newpassword1",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "admin@voyago.test", Password: "newpassword1",
	}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "admin@voyago.test", Password: "oldpassword1",
	}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("old password still accepted")
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "oldpassword1")
	svc := NewAuthService(s, mem.NewResetTokens(), nil)

	err := svc.ChangePassword("admin@voyago.test", request_models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword1",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "oldpassword1")
	tokens := mem.NewResetTokens()
	mail := &recordingMailService{}
	svc := NewAuthService(s, tokens, mail)

	if err := svc.RequestPasswordReset(context.Background(), "admin@voyago.test"); err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if len(mail.resets) != 1 {
		t.Fatalf("reset mails sent = %d, want 1", len(mail.resets))
	}

	// Unknown emails are silently accepted and no mail goes out.
	if err := svc.RequestPasswordReset(context.Background(), "stranger@voyago.test"); err != nil {
		t.Fatalf("unknown email request: %v", err)
	}
	if len(mail.resets) != 1 {
		t.Errorf("reset mails sent = %d after unknown email, want 1", len(mail.resets))
	}
}

func TestConfirmPasswordResetInvalidToken(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "oldpassword1")
	svc := NewAuthService(s, mem.NewResetTokens(), nil)

	err := svc.ConfirmPasswordReset(request_models.ConfirmPasswordResetRequest{
		Token:       "bogus",
		NewPassword: "newpassword1",
	})
	if !errors.Is(err, utils.ErrResetTokenInvalid) {
		t.Errorf("err = %v, want ErrResetTokenInvalid", err)
	}
}

func TestConfirmPasswordResetConsumesToken(t *testing.T) {
	s := storeWithAdmin(t, "admin@voyago.test", "oldpassword1")
	tokens := mem.NewResetTokens()
	svc := NewAuthService(s, tokens, &recordingMailService{})

	tokens.Set("tok-1", "admin@voyago.test", time.Minute)

	req := request_models.ConfirmPasswordResetRequest{Token: "tok-1", NewPassword: "newpassword1"}
	if err := svc.ConfirmPasswordReset(req); err != nil {
		t.Fatalf("ConfirmPasswordReset: %v", err)
	}

	// Token is single use.
	if err := svc.ConfirmPasswordReset(req); !errors.Is(err, utils.ErrResetTokenInvalid) {
		t.Errorf("second use err = %v, want ErrResetTokenInvalid", err)
	}

	if _, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "admin@voyago.test", Password: "newpassword1",
	}); err != nil {
		t.Errorf("login after reset: %v", err)
	}
}
