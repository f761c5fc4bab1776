package analytics

import (
	"math"

	"trackstat/internal/domain/workitem"
)

// ComputeProgress counts completion over a flat item set. Canceled items are
// excluded from the total; the rate is a percentage rounded to two decimals,
// zero when nothing counts toward the total.
func ComputeProgress(items []workitem.WorkItem) Progress {
	var p Progress
	for _, it := range items {
		if it.Counted() {
			p.Total++
		}
		if it.Completed() {
			p.Completed++
		}
	}
	p.CompletedRate = rate(p.Completed, p.Total)
	return p
}

// ItemProgress rolls a root and its descendants into one Progress. A leaf
// with no descendants reduces to the single-item calculation through the
// same counting path, so flat lists and hierarchical rollups agree.
func ItemProgress(root workitem.WorkItem, descendants []workitem.WorkItem) Progress {
	all := make([]workitem.WorkItem, 0, len(descendants)+1)
	all = append(all, root)
	all = append(all, descendants...)
	return ComputeProgress(all)
}

func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*10000) / 100
}
