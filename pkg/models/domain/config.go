package domain

import (
	"fmt"
	"path/filepath"
)

// Default input file names, relative to the dataset directory.
const (
	DefaultPoolBlockSizeFile = "pool_blocksize.csv"
	DefaultBlockSizeFile     = "blocksize.csv"
	DefaultConfDelayFile     = "conf_delay.csv"
	DefaultHashRateFile      = "hash_rate.csv"
)

// DatasetProfile names the four input files of one report run.
type DatasetProfile struct {
	Name          string
	Dir           string
	PoolBlockSize string
	BlockSize     string
	ConfDelay     string
	HashRate      string
}

// DefaultDatasetProfile reads the fixed file names from dir.
func DefaultDatasetProfile(dir string) DatasetProfile {
	return DatasetProfile{
		Name:          "default",
		Dir:           dir,
		PoolBlockSize: DefaultPoolBlockSizeFile,
		BlockSize:     DefaultBlockSizeFile,
		ConfDelay:     DefaultConfDelayFile,
		HashRate:      DefaultHashRateFile,
	}
}

func (p DatasetProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Dir)
}

// Path resolves an input file name against the profile directory.
func (p DatasetProfile) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || p.Dir == "" {
		return name
	}
	return filepath.Join(p.Dir, name)
}
