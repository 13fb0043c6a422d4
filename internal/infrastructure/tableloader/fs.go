package tableloader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"passerelle/internal/domain"
	"passerelle/internal/ports/output"
)

// Ensure both loaders implement the TableLoader port.
var (
	_ output.TableLoader = (*FSLoader)(nil)
	_ output.TableLoader = (*HTTPLoader)(nil)
)

// FSLoader reads translation tables from a file system, looking for
// <locale>.json then <locale>.toml.
type FSLoader struct {
	fsys fs.FS
	log  *slog.Logger
}

func NewFSLoader(fsys fs.FS, logger *slog.Logger) *FSLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSLoader{fsys: fsys, log: logger}
}

func (l *FSLoader) Load(ctx context.Context, locale string) (domain.TranslationTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, name := range []string{locale + ".json", locale + ".toml"} {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lecture de %s: %w", name, err)
		}

		table, err := decode(name, data)
		if err != nil {
			return nil, err
		}
		l.log.Debug("📖 Table de traduction lue", "file", name, "locale", locale)
		return table, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, locale)
}

// decode unmarshals a translation document according to its extension.
func decode(name string, data []byte) (domain.TranslationTable, error) {
	var raw map[string]any
	var err error
	if strings.HasSuffix(name, ".toml") {
		err = toml.Unmarshal(data, &raw)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", domain.ErrInvalidDocument, name, err)
	}
	return domain.TranslationTable(raw), nil
}
