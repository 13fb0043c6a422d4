package output

import (
	"context"

	"passerelle/internal/domain"
)

// TableLoader fetches the translation table for one locale from its source
// (embedded files, a directory on disk, a remote endpoint).
type TableLoader interface {
	Load(ctx context.Context, locale string) (domain.TranslationTable, error)
}
