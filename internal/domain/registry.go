package domain

// Registry holds one TranslationTable per configured locale. After the
// initialization batch every configured locale has an entry, possibly empty.
// The registry itself is not safe for concurrent use; the localization
// service guards it.
type Registry struct {
	tables map[string]TranslationTable
}

func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]TranslationTable)}
}

// Put replaces the table stored for locale. A nil table is recorded as an
// empty one so that the locale still counts as loaded.
func (r *Registry) Put(locale string, table TranslationTable) {
	if table == nil {
		table = TranslationTable{}
	}
	r.tables[locale] = table
}

// Table returns the table stored for locale.
func (r *Registry) Table(locale string) (TranslationTable, bool) {
	table, ok := r.tables[locale]
	return table, ok
}

// Has reports whether a table, possibly empty, is stored for locale.
func (r *Registry) Has(locale string) bool {
	_, ok := r.tables[locale]
	return ok
}
