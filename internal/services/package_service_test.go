package services

import (
	"errors"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

func TestCreatePackageGeneratesIDAndSlug(t *testing.T) {
	svc := NewPackageService(newTestStore())

	pkg, err := svc.CreatePackage("Admin", db_models.TourPackage{
		Name:        "Ladakh: The Road Trip!",
		Destination: "Ladakh",
		Price:       52000,
	})
	if err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}
	if pkg.ID == "" {
		t.Error("id not generated")
	}
	if pkg.Slug != "ladakh-the-road-trip" {
		t.Errorf("slug = %q", pkg.Slug)
	}
}

func TestCreatePackageValidation(t *testing.T) {
	svc := NewPackageService(newTestStore())

	if _, err := svc.CreatePackage("Admin", db_models.TourPackage{Destination: "Goa"}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("missing name err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.CreatePackage("Admin", db_models.TourPackage{Name: "Goa Trip"}); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("missing destination err = %v, want ErrInvalidInput", err)
	}
}

func TestCreatePackageRejectsDuplicateID(t *testing.T) {
	svc := NewPackageService(newTestStore())

	if _, err := svc.CreatePackage("Admin", db_models.TourPackage{ID: "pkg-1", Name: "A", Destination: "Goa"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreatePackage("Admin", db_models.TourPackage{ID: "pkg-1", Name: "B", Destination: "Goa"}); !errors.Is(err, utils.ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestListPackagesFilters(t *testing.T) {
	svc := NewPackageService(newTestStore())

	seed := []db_models.TourPackage{
		{ID: "pkg-1", Name: "Backwaters", Destination: "Kerala", Category: "Nature"},
		{ID: "pkg-2", Name: "Beach Week", Destination: "Goa", Category: "Beach"},
		{ID: "pkg-3", Name: "Spice Trail", Destination: "Kerala", Category: "Culture"},
	}
	for _, p := range seed {
		if _, err := svc.CreatePackage("Admin", p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if got := svc.ListPackages("", ""); len(got) != 3 {
		t.Errorf("unfiltered = %d, want 3", len(got))
	}
	if got := svc.ListPackages("nature", ""); len(got) != 1 || got[0].ID != "pkg-1" {
		t.Errorf("category filter = %+v", got)
	}
	if got := svc.ListPackages("", "kerala"); len(got) != 2 {
		t.Errorf("destination filter = %d, want 2", len(got))
	}
	if got := svc.ListPackages("Beach", "kerala"); len(got) != 0 {
		t.Errorf("combined filter = %+v, want none", got)
	}
}

func TestUpdatePackageReslugsOnRename(t *testing.T) {
	s := newTestStore()
	svc := NewPackageService(s)

	created, err := svc.CreatePackage("Admin", db_models.TourPackage{Name: "Old Name", Destination: "Goa"})
	if err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}

	created.Name = "Brand New Name"
	updated, err := svc.UpdatePackage("Admin", created)
	if err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}
	if updated.Slug != "brand-new-name" {
		t.Errorf("slug = %q", updated.Slug)
	}

	// The update entry carries the previous state for revert.
	entries := s.Activity.List()
	if entries[0].Action != "update" || len(entries[0].PreviousData) == 0 {
		t.Errorf("update entry = %+v", entries[0])
	}
}

func TestGetPackageBySlug(t *testing.T) {
	svc := NewPackageService(newTestStore())

	if _, err := svc.CreatePackage("Admin", db_models.TourPackage{Name: "Kerala Backwaters", Destination: "Kerala"}); err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}

	pkg, err := svc.GetPackageBySlug("kerala-backwaters")
	if err != nil {
		t.Fatalf("GetPackageBySlug: %v", err)
	}
	if pkg.Name != "Kerala Backwaters" {
		t.Errorf("name = %q", pkg.Name)
	}

	if _, err := svc.GetPackageBySlug("missing"); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeletePackageRecordsPrevious(t *testing.T) {
	s := newTestStore()
	svc := NewPackageService(s)

	created, _ := svc.CreatePackage("Admin", db_models.TourPackage{Name: "Goa Trip", Destination: "Goa"})

	if err := svc.DeletePackage("Admin", created.ID); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}

	entries := s.Activity.List()
	if entries[0].Action != "delete" || len(entries[0].PreviousData) == 0 {
		t.Errorf("delete entry = %+v", entries[0])
	}
	if _, err := svc.GetPackageByID(created.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("package still present after delete")
	}
}
