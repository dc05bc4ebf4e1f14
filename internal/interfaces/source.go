package interfaces

import (
	"context"

	"trendfin/internal/types"
)

// TextSource supplies raw documents for a scan. Implementations own all
// network concerns; the parsers and analyzer never see them.
type TextSource interface {
	Name() string
	Collect(ctx context.Context) ([]types.Document, error)
}

// SymbolSource supplies the authoritative valid-ticker universe.
type SymbolSource interface {
	Symbols(ctx context.Context) ([]string, error)
}
