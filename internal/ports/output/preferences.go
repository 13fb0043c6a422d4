package output

import "context"

// PreferenceStore persists the visitor's locale choice between runs. Both
// operations are best-effort: Get reports absent on any failure and Put
// swallows its own errors.
type PreferenceStore interface {
	Get(ctx context.Context) (string, bool)
	Put(ctx context.Context, locale string)
}
