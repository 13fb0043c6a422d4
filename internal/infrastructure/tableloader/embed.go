package tableloader

import (
	"embed"
	"io/fs"
	"log/slog"
)

//go:embed locales/*.json
var embeddedFS embed.FS

// Embedded returns a loader over the translation tables compiled into the
// binary, used when no LOCALES_DIR or LOCALES_URL is configured.
func Embedded(logger *slog.Logger) *FSLoader {
	sub, err := fs.Sub(embeddedFS, "locales")
	if err != nil {
		panic("tableloader: sous-répertoire locales absent: " + err.Error())
	}
	return NewFSLoader(sub, logger)
}
