package screen

import "github.com/clipperhouse/uax29/v2/graphemes"

// ClusterSegmenter assembles a stream of runes fed one at a time by the VT
// parser into complete grapheme clusters, re-segmenting its pending buffer
// on every rune so that combining marks and ZWJ sequences arriving across
// separate parser callbacks still coalesce into a single cluster.
type ClusterSegmenter struct {
	pending []rune
}

// Push appends r and returns any clusters that are now known to be
// complete. At most one trailing cluster is ever held back (the one that
// might still be extended by a following combining rune).
func (s *ClusterSegmenter) Push(r rune) []string {
	s.pending = append(s.pending, r)
	clusters := Split(string(s.pending))
	if len(clusters) <= 1 {
		return nil
	}
	complete := clusters[:len(clusters)-1]
	tail := clusters[len(clusters)-1]
	s.pending = []rune(tail)
	return complete
}

// Flush returns the held-back trailing cluster, if any, and resets the
// segmenter.
func (s *ClusterSegmenter) Flush() string {
	if len(s.pending) == 0 {
		return ""
	}
	tail := string(s.pending)
	s.pending = nil
	return tail
}

// Split breaks s into grapheme clusters using the Unicode text segmentation
// algorithm.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	seg := graphemes.FromString(s)
	for seg.Next() {
		out = append(out, seg.Value())
	}
	return out
}
