// internal/app/features/analytics/templates.go
package analytics

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "analytics",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
