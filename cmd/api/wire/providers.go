package wire

import (
	"context"
	"formbuilder-server/cmd/config"
	"formbuilder-server/internal/forms/derived"
	"formbuilder-server/internal/forms/httpapi"
	"formbuilder-server/internal/forms/persistence"
	"formbuilder-server/internal/forms/usecases"
	"formbuilder-server/internal/infra/httpserver"
	"formbuilder-server/internal/infra/kv"
	"formbuilder-server/internal/infra/utils"

	"github.com/google/wire"
)

// FormsModule is the wired forms bounded context. The three controllers
// share one builder, one schema catalog and one preview service.
type FormsModule struct {
	Draft   *httpapi.DraftController
	Schemas *httpapi.SchemaController
	Preview *httpapi.PreviewController
}

func NewFormsModule(draft *httpapi.DraftController, schemas *httpapi.SchemaController, preview *httpapi.PreviewController) *FormsModule {
	return &FormsModule{
		Draft:   draft,
		Schemas: schemas,
		Preview: preview,
	}
}

func (m *FormsModule) Controllers() []httpserver.Controller {
	return []httpserver.Controller{m.Draft, m.Schemas, m.Preview}
}

var FormsSet = wire.NewSet(
	provideSchemaRepository,
	wire.Bind(new(usecases.SchemaRepository), new(*persistence.SimpleSchemaRepository)),
	usecases.NewSchemaService,
	wire.Bind(new(usecases.SchemaService), new(*usecases.SimpleSchemaService)),
	provideClock,
	usecases.NewBuilderService,
	wire.Bind(new(usecases.BuilderService), new(*usecases.SimpleBuilderService)),
	wire.Bind(new(usecases.DraftSource), new(*usecases.SimpleBuilderService)),
	derived.NewEvaluator,
	usecases.NewPreviewService,
	wire.Bind(new(usecases.PreviewService), new(*usecases.SimplePreviewService)),
	httpapi.NewDraftController,
	httpapi.NewSchemaController,
	httpapi.NewPreviewController,
	NewFormsModule,
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideStore(ctx context.Context, cfg config.AppConfig) (kv.Store, error) {
	return kv.Open(ctx, kv.Options{
		Backend:  kv.Backend(cfg.Store.Backend),
		DSN:      cfg.Store.DSN,
		CacheTTL: cfg.Store.CacheTTL,
		Redis:    provideRedisConfig(cfg),
	})
}

func provideRedisConfig(cfg config.AppConfig) kv.RedisConfig {
	redisConfig := kv.DefaultRedisConfig()
	redisConfig.Addr = cfg.Redis.Addr
	redisConfig.Password = cfg.Redis.Password
	redisConfig.DB = cfg.Redis.DB
	return redisConfig
}

func provideSchemaRepository(store kv.Store, cfg config.AppConfig) *persistence.SimpleSchemaRepository {
	return persistence.NewSchemaRepository(store, cfg.Store.Namespace)
}

func provideClock() utils.Clock {
	return utils.SystemClock()
}
