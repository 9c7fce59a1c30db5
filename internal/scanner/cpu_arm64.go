//go:build arm64 && !purego

package scanner

import (
	"golang.org/x/sys/cpu"
)

// hasSIMD reports NEON (ASIMD) support.
func hasSIMD() bool {
	return cpu.ARM64.HasASIMD
}
