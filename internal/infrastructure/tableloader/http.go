package tableloader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"passerelle/internal/domain"
)

// maxDocumentSize caps a fetched translation document at 4 MiB. Anything
// larger is truncated and fails to decode.
const maxDocumentSize = 4 << 20

// HTTPLoader fetches <base>/<locale>.json from a remote origin, the same
// layout the site itself serves under /locales/.
type HTTPLoader struct {
	base   string
	client *http.Client
	log    *slog.Logger
}

func NewHTTPLoader(base string, client *http.Client, logger *slog.Logger) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPLoader{
		base:   strings.TrimRight(base, "/"),
		client: client,
		log:    logger,
	}
}

func (l *HTTPLoader) Load(ctx context.Context, locale string) (domain.TranslationTable, error) {
	url := l.base + "/" + locale + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("requête %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("récupération de %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("récupération de %s: statut %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", url, err)
	}

	table, err := decode(locale+".json", data)
	if err != nil {
		return nil, err
	}
	l.log.Debug("📖 Table de traduction téléchargée", "url", url, "locale", locale)
	return table, nil
}
