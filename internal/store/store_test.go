package store

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

func TestStore_BookingStatusScenario(t *testing.T) {
	s := NewStore(Config{StrictTransitions: true})

	if err := s.Bookings.Add(db_models.Booking{
		ID:          "BK-2001",
		Type:        db_models.BookingTypePackage,
		Status:      db_models.BookingPending,
		TotalAmount: 100,
	}); err != nil {
		t.Fatalf("Add = %v", err)
	}

	if _, err := s.UpdateBookingStatus("BK-2001", db_models.BookingConfirmed); err != nil {
		t.Fatalf("UpdateBookingStatus = %v", err)
	}

	got := s.Bookings.List()
	if len(got) != 1 {
		t.Fatalf("List() len = %d, want 1", len(got))
	}
	if got[0].Status != db_models.BookingConfirmed {
		t.Errorf("Status = %q, want Confirmed", got[0].Status)
	}
	if got[0].TotalAmount != 100 {
		t.Errorf("TotalAmount = %v, want unchanged 100", got[0].TotalAmount)
	}
}

func TestStore_UpdateBookingStatusErrors(t *testing.T) {
	s := NewStore(Config{StrictTransitions: true})
	_ = s.Bookings.Add(db_models.Booking{ID: "BK-1", Status: db_models.BookingCancelled})

	tests := []struct {
		name    string
		id      string
		status  db_models.BookingStatus
		wantErr error
	}{
		{"missing id", "BK-404", db_models.BookingConfirmed, utils.ErrNotFound},
		{"unknown status", "BK-1", "Shipped", utils.ErrUnknownStatus},
		{"terminal state", "BK-1", db_models.BookingPending, utils.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UpdateBookingStatus(tt.id, tt.status)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateBookingStatus(%q, %q) = %v, want %v", tt.id, tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestStore_PermissiveModeAllowsAnyTransition(t *testing.T) {
	s := NewStore(Config{StrictTransitions: false})
	_ = s.Bookings.Add(db_models.Booking{ID: "BK-1", Status: db_models.BookingResolved})

	if _, err := s.UpdateBookingStatus("BK-1", db_models.BookingPending); err != nil {
		t.Fatalf("permissive UpdateBookingStatus = %v", err)
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	s := NewStore(Config{SeedDemoData: true})
	_ = s.Bookings.Add(db_models.Booking{ID: "BK-1", Status: db_models.BookingPending, TotalAmount: 42})
	if _, err := s.RecordActivity("Admin", "create", "test booking", db_models.TargetBooking, "BK-1", nil); err != nil {
		t.Fatalf("RecordActivity = %v", err)
	}

	exported := s.ExportSnapshot()
	if exported.Version != db_models.SnapshotVersion {
		t.Fatalf("Version = %q, want %q", exported.Version, db_models.SnapshotVersion)
	}

	// Round-trip through JSON like a real backup file would.
	raw, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var decoded db_models.Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	restored := NewStore(Config{})
	if err := restored.ImportSnapshot(decoded); err != nil {
		t.Fatalf("ImportSnapshot = %v", err)
	}

	if !reflect.DeepEqual(restored.Packages.List(), s.Packages.List()) {
		t.Errorf("packages differ after round trip")
	}
	if !reflect.DeepEqual(restored.Bookings.List(), s.Bookings.List()) {
		t.Errorf("bookings differ after round trip")
	}
	if !reflect.DeepEqual(restored.Settings(), s.Settings()) {
		t.Errorf("settings differ after round trip")
	}
}

func TestStore_ImportSnapshotEmptyPackages(t *testing.T) {
	s := NewStore(Config{SeedDemoData: true})

	snap := s.ExportSnapshot()
	snap.Packages = []db_models.TourPackage{}

	if err := s.ImportSnapshot(snap); err != nil {
		t.Fatalf("ImportSnapshot = %v", err)
	}
	if got := s.Packages.List(); len(got) != 0 {
		t.Errorf("packages len = %d, want 0", len(got))
	}
}

func TestStore_ImportSnapshotVersionGate(t *testing.T) {
	s := NewStore(Config{})

	tests := []struct {
		version string
		wantErr error
	}{
		{"", nil},
		{"1", nil},
		{"2", utils.ErrSnapshotVersion},
		{"banana", utils.ErrSnapshotVersion},
	}

	for _, tt := range tests {
		t.Run("version "+tt.version, func(t *testing.T) {
			err := s.ImportSnapshot(db_models.Snapshot{Version: tt.version})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ImportSnapshot(version=%q) = %v, want %v", tt.version, err, tt.wantErr)
			}
		})
	}
}

func TestStore_SettingsWholesaleReplace(t *testing.T) {
	s := NewStore(Config{})
	s.SaveCompanyProfile(db_models.CompanyProfile{Name: "A", Email: "a@x.example", BaseCurrency: "INR"})
	s.SaveCompanyProfile(db_models.CompanyProfile{Name: "B"})

	got := s.Settings().Company
	if got.Name != "B" {
		t.Errorf("Name = %q, want B", got.Name)
	}
	if got.Email != "" {
		t.Errorf("Email = %q, want empty after wholesale replace", got.Email)
	}
}
