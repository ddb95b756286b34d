package recommend_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingRepo, provideRecommendService)

func provideEmbeddingRepo(db *gorm.DB) repositories.EmbeddingRepositoryInterface {
	return repositories.NewEmbeddingRepository(db)
}

func provideRecommendService(
	s *store.Store,
	repo repositories.EmbeddingRepositoryInterface,
	aiClient utils.GenAIClientInterface,
) services.RecommendServiceInterface {
	return services.NewRecommendService(s, repo, aiClient)
}
