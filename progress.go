package docstore

import "fmt"

// Progress describes the state of an enumeration after one more item has
// been yielded.
type Progress struct {
	// TotalItems is the number of candidate files discovered.
	TotalItems int
	// CompletedItems counts items already handled, loaded and filtered
	// alike.
	CompletedItems int
	// Description is a human-readable status line.
	Description string
}

// ProgressFunc receives a Progress snapshot after each handled item.
// Implementations must be cheap; they run inline with enumeration.
type ProgressFunc func(Progress)

// NewProgressStatus builds the Progress snapshot reported after one more
// item has been loaded or filtered.
func NewProgressStatus(loaded, filtered, total int) Progress {
	return Progress{
		TotalItems:     total,
		CompletedItems: loaded + filtered,
		Description:    fmt.Sprintf("%d files loaded (%d filtered)", loaded, filtered),
	}
}
