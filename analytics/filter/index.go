package filter

import (
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/Abraxas-365/recruitboard/recruitment/posting"
)

// PostingIndex maps posting IDs to postings. It is built once per
// aggregation pass and threaded through every predicate.
type PostingIndex struct {
	byID map[kernel.PostingID]*posting.Posting
}

// NewPostingIndex indexes the postings. When an ID repeats, the first
// posting in the slice wins.
func NewPostingIndex(postings []posting.Posting) PostingIndex {
	ix := PostingIndex{byID: make(map[kernel.PostingID]*posting.Posting, len(postings))}
	for i := range postings {
		if _, dup := ix.byID[postings[i].ID]; !dup {
			ix.byID[postings[i].ID] = &postings[i]
		}
	}
	return ix
}

// Lookup returns the posting with the given ID
func (ix PostingIndex) Lookup(id kernel.PostingID) (*posting.Posting, bool) {
	p, ok := ix.byID[id]
	return p, ok
}

// Len is the number of distinct postings
func (ix PostingIndex) Len() int {
	return len(ix.byID)
}
