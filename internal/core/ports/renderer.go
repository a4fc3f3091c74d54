package ports

import (
	"io"

	"go.trai.ch/autoslice/internal/core/domain"
)

// DefinitionRenderer serializes a slice definition to its textual
// configuration form.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type DefinitionRenderer interface {
	// Render writes the document for one package, with deterministic key
	// ordering and blank-line section separation.
	Render(w io.Writer, def *domain.SliceDefinition) error
}
