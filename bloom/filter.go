// Package bloom provides email deduplication using Bloom filters.
package bloom

import (
	"io"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter for tracking already-processed email IDs.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds an email ID to the filter.
func (f *Filter) Add(id string) {
	f.f.AddString(id)
}

// Test returns true if the email ID might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(id string) bool {
	return f.f.TestString(id)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// WriteTo serializes the filter so it can be restored in a later run.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	return f.f.WriteTo(w)
}

// ReadFrom replaces the filter contents with a previously serialized
// filter.
func (f *Filter) ReadFrom(r io.Reader) (int64, error) {
	return f.f.ReadFrom(r)
}
