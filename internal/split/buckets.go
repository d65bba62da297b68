// internal/split/buckets.go
package split

import "bvsplit/internal/genomes"

// Buckets accumulates items per targeted genome. Iteration follows the
// first appearance of each genome in the target list.
type Buckets struct {
	order []string
	items map[string][]string
}

// NewBuckets creates one empty bucket per distinct target.
func NewBuckets(targets []string) *Buckets {
	order := genomes.Unique(targets)
	b := &Buckets{order: order, items: make(map[string][]string, len(order))}
	for _, id := range order {
		b.items[id] = nil
	}
	return b
}

// Add appends item to id's bucket and reports whether id is targeted.
func (b *Buckets) Add(id, item string) bool {
	cur, ok := b.items[id]
	if !ok {
		return false
	}
	b.items[id] = append(cur, item)
	return true
}

// Drain visits each target in order with its items, building the Report.
// A non-empty bucket is handed to flush; a failed flush stops the walk.
func (b *Buckets) Drain(flush func(id string, items []string) error) (Report, error) {
	var rep Report
	for _, id := range b.order {
		items := b.items[id]
		if len(items) == 0 {
			rep.NotFound = append(rep.NotFound, id)
			continue
		}
		if err := flush(id, items); err != nil {
			return rep, err
		}
		rep.Extracted = append(rep.Extracted, id)
	}
	return rep, nil
}
