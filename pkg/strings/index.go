package strings

import (
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/spritepal/patscan/pkg/search"
)

var useNative bool

func init() {
	useNative = cpu.X86.HasAVX && cpu.X86.HasAVX2
}

// Index returns the index of the first instance of substr in s, or -1 if
// substr is not present in s. It is the string front door for the byte
// searcher: on CPUs where the stdlib search is vectorized it defers to
// strings.Index, elsewhere it runs the portable scan.
func Index(s, substr string) int {
	if useNative {
		return strings.Index(s, substr)
	}

	return int(search.IndexPortable([]byte(s), []byte(substr)))
}
