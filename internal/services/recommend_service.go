package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type RecommendServiceInterface interface {
	IndexPackage(ctx context.Context, packageID string) error
	RemovePackage(packageID string) error
	ReindexAll(ctx context.Context) (int, error)
	SuggestPackages(ctx context.Context, query string) ([]db_models.TourPackage, error)
}

type RecommendService struct {
	store         *store.Store
	embeddingRepo repositories.EmbeddingRepositoryInterface
	aiClient      utils.GenAIClientInterface
}

func NewRecommendService(
	s *store.Store,
	repo repositories.EmbeddingRepositoryInterface,
	aiClient utils.GenAIClientInterface,
) RecommendServiceInterface {
	return &RecommendService{store: s, embeddingRepo: repo, aiClient: aiClient}
}

func embeddingText(pkg db_models.TourPackage) string {
	parts := []string{pkg.Name, pkg.Destination, pkg.Category, pkg.Duration, pkg.Description}
	return strings.Join(parts, " | ")
}

// IndexPackage embeds the package text and upserts the vector row. Callers
// treat failures as non-fatal; recommendations degrade, the catalogue does not.
func (r *RecommendService) IndexPackage(ctx context.Context, packageID string) error {
	if r.aiClient == nil {
		return utils.ErrAINotConfigured
	}

	pkg, err := r.store.Packages.Get(packageID)
	if err != nil {
		return err
	}

	vector, err := r.aiClient.GetEmbedding(ctx, embeddingText(pkg))
	if err != nil {
		return fmt.Errorf("failed to embed package %s: %w", packageID, err)
	}

	return r.embeddingRepo.UpsertEmbedding(db_models.PackageEmbedding{
		PackageID:   pkg.ID,
		Name:        pkg.Name,
		Destination: pkg.Destination,
		Category:    pkg.Category,
		Tags:        pq.StringArray{pkg.Category, pkg.Destination},
		Embedding:   vector,
	})
}

func (r *RecommendService) RemovePackage(packageID string) error {
	return r.embeddingRepo.DeleteEmbedding(packageID)
}

// ReindexAll rebuilds the whole index, returning how many packages were
// embedded. Individual failures are logged and skipped.
func (r *RecommendService) ReindexAll(ctx context.Context) (int, error) {
	indexed := 0
	for _, pkg := range r.store.Packages.List() {
		if err := r.IndexPackage(ctx, pkg.ID); err != nil {
			if errors.Is(err, utils.ErrDatabaseDisabled) || errors.Is(err, utils.ErrAINotConfigured) {
				return indexed, err
			}
			log.Printf("Skipping package %s during reindex: %v", pkg.ID, err)
			continue
		}
		indexed++
	}
	return indexed, nil
}

// SuggestPackages embeds the free-text query and returns catalogue packages
// ranked by vector similarity. Rows whose package has since been deleted
// from the catalogue are dropped.
func (r *RecommendService) SuggestPackages(ctx context.Context, query string) ([]db_models.TourPackage, error) {
	if r.aiClient == nil {
		return nil, utils.ErrAINotConfigured
	}
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := r.aiClient.GetEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	rows, err := r.embeddingRepo.SearchByVector(vector)
	if err != nil {
		return nil, err
	}

	packages := make([]db_models.TourPackage, 0, len(rows))
	for _, row := range rows {
		pkg, err := r.store.Packages.Get(row.PackageID)
		if err != nil {
			log.Printf("Embedding row %s has no catalogue package, skipping", row.PackageID)
			continue
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}
