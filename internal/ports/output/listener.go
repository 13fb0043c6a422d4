package output

// LocaleListener is notified with the effective locale after every locale
// change. It stands in for the site's re-render hook.
type LocaleListener interface {
	LocaleChanged(locale string)
}

// ListenerFunc adapts a plain function to the LocaleListener interface.
type ListenerFunc func(locale string)

func (f ListenerFunc) LocaleChanged(locale string) { f(locale) }
