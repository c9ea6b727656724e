//go:build wireinject
// +build wireinject

package wire

import (
	"context"
	"formbuilder-server/cmd/config"
	"formbuilder-server/internal/infra/kv"

	"github.com/google/wire"
)

func InitializeFormsModule(ctx context.Context) (*FormsModule, error) {
	wire.Build(
		provideAppConfig,
		provideStore,
		FormsSet,
	)
	return nil, nil
}

// InitializeFormsModuleWithStore wires the module over an existing store.
func InitializeFormsModuleWithStore(store kv.Store, cfg config.AppConfig) (*FormsModule, error) {
	wire.Build(
		FormsSet,
	)
	return nil, nil
}
