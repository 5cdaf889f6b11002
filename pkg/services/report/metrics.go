package report

const (
	// BytesPerMegabyte converts the block size series, published in MB, to bytes.
	BytesPerMegabyte = 1000000.0
	// TargetBlockInterval is the protocol's intended minutes between blocks.
	TargetBlockInterval = 10.0
)

// Occupancy is the actual block size as a percentage of the maximum possible block size.
func Occupancy(blockSize, maxBlockSize float64) float64 {
	return (blockSize / maxBlockSize) * 100.0
}

// BlockFindRate estimates the minutes per block if the hash rate change to nextHashRate held
// before difficulty adjusted.
func BlockFindRate(hashRate, nextHashRate float64) float64 {
	return TargetBlockInterval / (nextHashRate / hashRate)
}

// ProjectedConfDelay scales the confirmation delay by the hash rate change.
func ProjectedConfDelay(confDelay, hashRate, nextHashRate float64) float64 {
	return confDelay * (nextHashRate / hashRate)
}
