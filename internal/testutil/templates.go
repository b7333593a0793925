package testutil

import (
	"testing"

	"github.com/dalemusser/creatorhub/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates compiles every registered template set with the same engine
// the server uses and installs it for templates.Render. Feature sets only see
// the shared layout set, so a partial borrowed from another feature fails here
// the way it would in production. The engine is uninstalled on cleanup.
func BootTemplates(t *testing.T) {
	t.Helper()
	resources.LoadSharedTemplates()

	logger := zap.NewNop()
	eng := templates.New(false)
	if err := eng.Boot(logger); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
	templates.UseEngine(eng, logger)
	t.Cleanup(func() { templates.UseEngine(nil, nil) })
}
