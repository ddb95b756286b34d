package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type PackageServiceInterface interface {
	ListPackages(category, destination string) []db_models.TourPackage
	GetPackageByID(id string) (db_models.TourPackage, error)
	GetPackageBySlug(slug string) (db_models.TourPackage, error)
	CreatePackage(actor string, pkg db_models.TourPackage) (db_models.TourPackage, error)
	UpdatePackage(actor string, pkg db_models.TourPackage) (db_models.TourPackage, error)
	DeletePackage(actor, id string) error
}

type PackageService struct {
	store *store.Store
}

func NewPackageService(s *store.Store) PackageServiceInterface {
	return &PackageService{store: s}
}

// ListPackages filters the catalogue; empty filters match everything.
// Order is newest-first, as admins added them.
func (p *PackageService) ListPackages(category, destination string) []db_models.TourPackage {
	all := p.store.Packages.List()
	if category == "" && destination == "" {
		return all
	}

	dest := strings.ToLower(destination)
	filtered := make([]db_models.TourPackage, 0, len(all))
	for _, pkg := range all {
		if category != "" && !strings.EqualFold(pkg.Category, category) {
			continue
		}
		if dest != "" && !strings.Contains(strings.ToLower(pkg.Destination), dest) {
			continue
		}
		filtered = append(filtered, pkg)
	}
	return filtered
}

func (p *PackageService) GetPackageByID(id string) (db_models.TourPackage, error) {
	return p.store.Packages.Get(id)
}

// GetPackageBySlug returns the first match; slugs are derived from names and
// are not guaranteed unique.
func (p *PackageService) GetPackageBySlug(slug string) (db_models.TourPackage, error) {
	for _, pkg := range p.store.Packages.List() {
		if pkg.Slug == slug {
			return pkg, nil
		}
	}
	return db_models.TourPackage{}, utils.ErrNotFound
}

func (p *PackageService) CreatePackage(actor string, pkg db_models.TourPackage) (db_models.TourPackage, error) {
	if strings.TrimSpace(pkg.Name) == "" || strings.TrimSpace(pkg.Destination) == "" {
		return db_models.TourPackage{}, utils.ErrInvalidInput
	}

	if pkg.ID == "" {
		pkg.ID = "pkg-" + uuid.New().String()
	}
	pkg.Slug = utils.Slugify(pkg.Name)

	if err := p.store.Packages.Add(pkg); err != nil {
		return db_models.TourPackage{}, err
	}

	_, _ = p.store.RecordActivity(actor, "create",
		fmt.Sprintf("Created package %q", pkg.Name),
		db_models.TargetPackage, pkg.ID, nil)

	return pkg, nil
}

func (p *PackageService) UpdatePackage(actor string, pkg db_models.TourPackage) (db_models.TourPackage, error) {
	previous, err := p.store.Packages.Get(pkg.ID)
	if err != nil {
		return db_models.TourPackage{}, err
	}

	if pkg.Name != previous.Name {
		pkg.Slug = utils.Slugify(pkg.Name)
	}

	if err := p.store.Packages.Update(pkg); err != nil {
		return db_models.TourPackage{}, err
	}

	_, _ = p.store.RecordActivity(actor, "update",
		fmt.Sprintf("Updated package %q", pkg.Name),
		db_models.TargetPackage, pkg.ID, previous)

	return pkg, nil
}

func (p *PackageService) DeletePackage(actor, id string) error {
	previous, err := p.store.Packages.Get(id)
	if err != nil {
		return err
	}

	if err := p.store.Packages.Delete(id); err != nil {
		return err
	}

	_, _ = p.store.RecordActivity(actor, "delete",
		fmt.Sprintf("Deleted package %q", previous.Name),
		db_models.TargetPackage, id, previous)

	return nil
}
