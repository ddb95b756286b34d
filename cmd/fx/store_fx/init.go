package store_fx

import (
	"os"

	"go.uber.org/fx"

	"voyago/internal/store"
)

var Module = fx.Provide(provideStore)

func provideStore() *store.Store {
	return store.NewStore(store.Config{
		StrictTransitions: os.Getenv("STRICT_TRANSITIONS") != "false",
		SeedDemoData:      os.Getenv("SEED_DEMO_DATA") != "false",
	})
}
