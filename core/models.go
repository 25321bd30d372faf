package core

import (
	"encoding/hex"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// productNameSeparator marks the start of a parenthesized title qualifier,
// as in "Widget Pro (2020)".
const productNameSeparator = " ("

// Record is a single catalog entry as supplied by the catalog loader.
// Records are read-only once loaded.
type Record struct {
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle" yaml:"subtitle"`
	Arg       string `json:"arg" yaml:"arg"`             // Unique id and action payload
	ImageFile string `json:"imagefile" yaml:"imagefile"` // Relative to the icons directory
}

// ProductName returns the part of the title before the first " (" qualifier,
// or the whole title when there is none.
func (r *Record) ProductName() string {
	return ProductName(r.Title)
}

// ProductName returns the product name portion of a title.
func ProductName(title string) string {
	name, _, _ := strings.Cut(title, productNameSeparator)
	return name
}

// Result is a record that matched a query, in its final output position.
type Result struct {
	Record      *Record
	ProductName string
}

// Fingerprint returns a hex BLAKE2b digest over the ordered catalog.
// Identical catalogs (same records, same order) produce identical fingerprints.
func Fingerprint(records []*Record) string {
	h, _ := blake2b.New(16, nil) // 16 bytes = 128 bits
	for _, record := range records {
		for _, field := range []string{record.Title, record.Subtitle, record.Arg, record.ImageFile} {
			h.Write([]byte(field))
			h.Write([]byte{0})
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// DuplicateArgs returns every arg value shared by more than one record,
// in order of first appearance.
func DuplicateArgs(records []*Record) []string {
	seen := make(map[string]int, len(records))
	var dups []string
	for _, record := range records {
		seen[record.Arg]++
		if seen[record.Arg] == 2 {
			dups = append(dups, record.Arg)
		}
	}
	return dups
}
