package report

import (
	"fmt"
	"time"

	"github.com/de-tools/block-atlas/pkg/models/domain"
)

// CheckAlignment verifies the weekly series of ds can be joined by index.
//
// The three blockchain series must have the same length and start every week at the same
// timestamp. The pool series must cover every week, each period starting within tolerance of the
// block size week it is joined with.
func CheckAlignment(ds *domain.Dataset, tolerance time.Duration) error {
	ref := ds.BlockSize

	for _, m := range []domain.MetricSeries{ds.ConfDelay, ds.HashRate} {
		if len(m.Weekly) != len(ref.Weekly) {
			return fmt.Errorf("%w: %s has %d weeks, %s has %d",
				domain.ErrIndexMisalignment, m.Name, len(m.Weekly), ref.Name, len(ref.Weekly))
		}
		for i := range ref.Weekly {
			if m.Weekly[i].Timestamp() != ref.Weekly[i].Timestamp() {
				return fmt.Errorf("%w: week %d starts at %d in %s and %d in %s",
					domain.ErrIndexMisalignment, i, m.Weekly[i].Timestamp(), m.Name, ref.Weekly[i].Timestamp(), ref.Name)
			}
		}
	}

	if len(ds.MaxBlockSize) < len(ref.Weekly) {
		return fmt.Errorf("%w: pool block sizes cover %d periods, %s has %d weeks",
			domain.ErrIndexMisalignment, len(ds.MaxBlockSize), ref.Name, len(ref.Weekly))
	}

	if tolerance <= 0 {
		return nil
	}
	limit := int64(tolerance / time.Second)
	for i := range ref.Weekly {
		diff := ds.MaxBlockSize[i].Timestamp() - ref.Weekly[i].Timestamp()
		if diff < 0 {
			diff = -diff
		}
		if diff >= limit {
			return fmt.Errorf("%w: week %d: pool period starts at %d, %s week at %d (tolerance %s)",
				domain.ErrIndexMisalignment, i, ds.MaxBlockSize[i].Timestamp(), ref.Name, ref.Weekly[i].Timestamp(), tolerance)
		}
	}

	return nil
}
