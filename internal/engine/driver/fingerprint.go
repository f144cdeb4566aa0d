package driver

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes an argv so that a changed configuration produces a different value.
func Fingerprint(args []string) string {
	h := xxhash.New()
	for _, arg := range args {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
