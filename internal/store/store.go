package store

import (
	"sync"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type Config struct {
	// StrictTransitions enforces the allowed-transition tables for booking
	// and driver statuses. Off reproduces the historical permissive
	// behavior where any status could follow any other.
	StrictTransitions bool
	// SeedDemoData loads the demo catalogue at construction.
	SeedDemoData bool
}

// Store owns every domain collection and the settings singletons for the
// lifetime of the process. UI/API layers hold no authoritative copies; all
// writes go through its methods.
type Store struct {
	Packages  *Collection[db_models.TourPackage]
	Drivers   *Collection[db_models.Driver]
	Bookings  *Collection[db_models.Booking]
	BlogPosts *Collection[db_models.BlogPost]
	Activity  *Collection[db_models.ActivityLogEntry]

	settingsMu sync.RWMutex
	settings   db_models.SettingsState

	strictTransitions bool
}

func NewStore(cfg Config) *Store {
	s := &Store{
		Packages:  NewCollection(func(p db_models.TourPackage) string { return p.ID }),
		Drivers:   NewCollection(func(d db_models.Driver) string { return d.ID }),
		Bookings:  NewCollection(func(b db_models.Booking) string { return b.ID }),
		BlogPosts: NewCollection(func(p db_models.BlogPost) string { return p.ID }),
		Activity:  NewCollection(func(e db_models.ActivityLogEntry) string { return e.ID }),

		strictTransitions: cfg.StrictTransitions,
	}

	if cfg.SeedDemoData {
		s.seed()
	}

	return s
}

// Settings returns a copy of the current settings state.
func (s *Store) Settings() db_models.SettingsState {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	return s.settings
}

// ReplaceSettings swaps the whole settings state (snapshot import).
func (s *Store) ReplaceSettings(state db_models.SettingsState) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings = state
}

// Settings groups are replaced wholesale on save; there is no partial-field
// merge contract.

func (s *Store) SaveCompanyProfile(p db_models.CompanyProfile) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings.Company = p
}

func (s *Store) SaveEmailSettings(e db_models.EmailSettings) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings.Email = e
}

func (s *Store) SaveAISettings(a db_models.AISettings) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings.AI = a
}

func (s *Store) SaveSeoSettings(seo db_models.SeoSettings) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings.SEO = seo
}

func (s *Store) SavePageSettings(p db_models.PageSettings) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings.Pages = p
}

func (s *Store) SaveAdminAccount(a db_models.AdminAccount) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	s.settings.Admin = a
}

// UpdateBookingStatus is shorthand for a single-field booking update. The
// transition table applies when the store is strict.
func (s *Store) UpdateBookingStatus(id string, status db_models.BookingStatus) (db_models.Booking, error) {
	if !IsBookingStatus(status) {
		return db_models.Booking{}, utils.ErrUnknownStatus
	}

	booking, err := s.Bookings.Get(id)
	if err != nil {
		return db_models.Booking{}, err
	}

	if s.strictTransitions && !CanTransitionBooking(booking.Status, status) {
		return db_models.Booking{}, utils.ErrInvalidTransition
	}

	booking.Status = status
	if err := s.Bookings.Update(booking); err != nil {
		return db_models.Booking{}, err
	}
	return booking, nil
}

func (s *Store) UpdateDriverStatus(id string, status db_models.DriverStatus) (db_models.Driver, error) {
	if !IsDriverStatus(status) {
		return db_models.Driver{}, utils.ErrUnknownStatus
	}

	driver, err := s.Drivers.Get(id)
	if err != nil {
		return db_models.Driver{}, err
	}

	if s.strictTransitions && !CanTransitionDriver(driver.Status, status) {
		return db_models.Driver{}, utils.ErrInvalidTransition
	}

	driver.Status = status
	if err := s.Drivers.Update(driver); err != nil {
		return db_models.Driver{}, err
	}
	return driver, nil
}
