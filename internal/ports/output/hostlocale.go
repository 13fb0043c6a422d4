package output

// HostLocale reports the host environment's preferred language tag, before
// base-subtag reduction.
type HostLocale interface {
	Primary() (string, bool)
}
