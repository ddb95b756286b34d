package blog_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
	"voyago/internal/store"
)

var Module = fx.Provide(provideBlogService)

func provideBlogService(s *store.Store) services.BlogServiceInterface {
	return services.NewBlogService(s)
}
