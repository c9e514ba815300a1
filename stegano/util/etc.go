package util
import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// Digest fingerprints a payload for reports and logs.
func Digest( data []byte ) uint64 {
	return xxhash.Sum64( data )
}

// CountChanged returns how many positions differ between a and b.
// Extra bytes of the longer slice are counted as changed.
func CountChanged( a, b []byte ) int {
	n := len(a)
	extra := len(b) - len(a)
	if len(b) < n {
		n = len(b)
		extra = len(a) - len(b)
	}
	changed := extra
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			changed++
		}
	}
	return changed
}
