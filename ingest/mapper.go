package ingest

import (
	"encoding/hex"
	"regexp"

	"github.com/cespare/xxhash/v2"
)

var (
	ffTitleRe = regexp.MustCompile(`FF #(\d+)`)
	anyNumRe  = regexp.MustCompile(`(\d{1,4})`)
)

// HashContent computes xxHash of content and returns a hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// RecordID derives the stable record ID from extraction output. The Fast
// Fact number is the natural key; when extraction could not recover it the
// ID falls back to a number found in the title, and finally to a short
// title hash so the record is still addressable.
func RecordID(number, title string) string {
	if number != "" {
		return number
	}
	if m := ffTitleRe.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	if m := anyNumRe.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return HashContent(title)[:8]
}
