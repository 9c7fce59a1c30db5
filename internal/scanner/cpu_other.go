//go:build (!amd64 && !arm64) || purego

package scanner

// hasSIMD returns false for unsupported architectures and purego builds.
func hasSIMD() bool {
	return false
}
