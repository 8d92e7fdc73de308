package dal

import "sort"

// UnknownPostalCode is the label of the bucket collecting breweries that
// carry no postal code.
const UnknownPostalCode = "unknown"

// PostalHistogram maps a postal code to the number of breweries sharing it.
type PostalHistogram map[string]int

// PostalBucket is one bar of a PostalHistogram.
type PostalBucket struct {
	PostalCode string `json:"postal_code"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
}

// Tally counts breweries per postal code. Breweries without a postal code are
// counted under the empty key so that the counts always add up to len(breweries).
func Tally(breweries []BrewerySummary) PostalHistogram {
	h := make(PostalHistogram, len(breweries))
	for _, b := range breweries {
		h[b.PostalCode]++
	}
	return h
}

// Sum returns the total of all buckets.
func (h PostalHistogram) Sum() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Max returns the largest bucket count, or 0 for an empty histogram.
func (h PostalHistogram) Max() int {
	highest := 0
	for _, n := range h {
		if n > highest {
			highest = n
		}
	}
	return highest
}

// Entries returns the buckets ordered by postal code.
func (h PostalHistogram) Entries() []PostalBucket {
	entries := make([]PostalBucket, 0, len(h))
	for code, n := range h {
		label := code
		if label == "" {
			label = UnknownPostalCode
		}
		entries = append(entries, PostalBucket{PostalCode: code, Label: label, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].PostalCode < entries[j].PostalCode
	})
	return entries
}
