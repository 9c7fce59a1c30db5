//go:build lexkitdebug

package invariant

// Enabled reports whether checks are compiled in.
const Enabled = true
