// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/creatorhub/internal/app/resources"
	"github.com/dalemusser/creatorhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup loads shared templates and site-wide view values and starts the
// background workers. It runs after EnsureSchema and before BuildHandler.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(viewdata.Options{LoginURL: appCfg.LoginURL})

	if deps.StatsSnapshot != nil {
		deps.StatsSnapshot.Start()
	}
	return nil
}
