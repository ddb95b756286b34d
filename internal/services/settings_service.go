package services

import (
	"voyago/internal/models/db_models"
	"voyago/internal/store"
)

type SettingsServiceInterface interface {
	GetSettings() db_models.SettingsState
	SaveCompanyProfile(actor string, p db_models.CompanyProfile)
	SaveEmailSettings(actor string, e db_models.EmailSettings)
	SaveAISettings(actor string, a db_models.AISettings)
	SaveSeoSettings(actor string, s db_models.SeoSettings)
	SavePageSettings(actor string, p db_models.PageSettings)
}

type SettingsService struct {
	store *store.Store
}

func NewSettingsService(s *store.Store) SettingsServiceInterface {
	return &SettingsService{store: s}
}

// GetSettings returns the settings with secrets blanked for API consumption.
func (s *SettingsService) GetSettings() db_models.SettingsState {
	state := s.store.Settings()
	state.Admin.PasswordHash = ""
	state.Email.Password = ""
	state.AI.APIKey = ""
	return state
}

func (s *SettingsService) record(actor, group string, previous db_models.SettingsState) {
	_, _ = s.store.RecordActivity(actor, "update",
		"Saved "+group+" settings",
		db_models.TargetSettings, group, previous)
}

func (s *SettingsService) SaveCompanyProfile(actor string, p db_models.CompanyProfile) {
	previous := s.store.Settings()
	s.store.SaveCompanyProfile(p)
	s.record(actor, "company", previous)
}

func (s *SettingsService) SaveEmailSettings(actor string, e db_models.EmailSettings) {
	previous := s.store.Settings()
	s.store.SaveEmailSettings(e)
	s.record(actor, "email", previous)
}

func (s *SettingsService) SaveAISettings(actor string, a db_models.AISettings) {
	previous := s.store.Settings()
	s.store.SaveAISettings(a)
	s.record(actor, "ai", previous)
}

func (s *SettingsService) SaveSeoSettings(actor string, seo db_models.SeoSettings) {
	previous := s.store.Settings()
	s.store.SaveSeoSettings(seo)
	s.record(actor, "seo", previous)
}

func (s *SettingsService) SavePageSettings(actor string, p db_models.PageSettings) {
	previous := s.store.Settings()
	s.store.SavePageSettings(p)
	s.record(actor, "pages", previous)
}
