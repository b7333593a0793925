package creatordashboard

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

// FS holds the dashboard templates.
//
//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "creatordashboard",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
