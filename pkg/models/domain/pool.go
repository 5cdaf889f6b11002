package domain

// MaxPoolNameBytes bounds the stored pool name.
const MaxPoolNameBytes = 31

// PoolBlockSizeRecord is one (time, pool) observation of the pool block size file.
type PoolBlockSizeRecord struct {
	Timestamp    int64
	PoolName     string
	LargestBlock int64
	Fraction     float64
}

// WeightedSize is the pool's contribution to the period's maximum block size.
func (p PoolBlockSizeRecord) WeightedSize() float64 {
	return p.Fraction * float64(p.LargestBlock)
}
