// internal/app/features/reviewemails/templates.go
package reviewemails

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "reviewemails",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
