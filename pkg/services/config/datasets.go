package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/de-tools/block-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry resolves dataset profiles to input files.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetDataset(ctx context.Context, profile string) (domain.DatasetProfile, error)
}

type cfgRegistry struct {
	cfg  *ini.File
	base string
}

// NewRegistry loads dataset profiles from an ini file, one section per profile:
//
//	[2015-q3]
//	dir            = data/2015-q3
//	pool_blocksize = pool_blocksize.csv
//	blocksize      = blocksize.csv
//	conf_delay     = conf_delay.csv
//	hash_rate      = hash_rate.csv
//
// Omitted file keys fall back to the default names. A relative dir is resolved against the
// directory of the ini file.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset profiles %s: %w", path, err)
	}
	return &cfgRegistry{cfg: cfg, base: filepath.Dir(path)}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetDataset(_ context.Context, profile string) (domain.DatasetProfile, error) {
	if !cr.cfg.HasSection(profile) {
		return domain.DatasetProfile{}, fmt.Errorf("profile %s not found", profile)
	}
	section := cr.cfg.Section(profile)

	dir := section.Key("dir").MustString(".")
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cr.base, dir)
	}

	return domain.DatasetProfile{
		Name:          profile,
		Dir:           dir,
		PoolBlockSize: section.Key("pool_blocksize").MustString(domain.DefaultPoolBlockSizeFile),
		BlockSize:     section.Key("blocksize").MustString(domain.DefaultBlockSizeFile),
		ConfDelay:     section.Key("conf_delay").MustString(domain.DefaultConfDelayFile),
		HashRate:      section.Key("hash_rate").MustString(domain.DefaultHashRateFile),
	}, nil
}

type staticRegistry struct {
	profiles map[string]domain.DatasetProfile
}

// NewStaticRegistry serves a fixed set of profiles, used when no profile file is given.
func NewStaticRegistry(profiles ...domain.DatasetProfile) Registry {
	m := make(map[string]domain.DatasetProfile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return &staticRegistry{profiles: m}
}

func (sr *staticRegistry) GetProfiles(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(sr.profiles))
	for name := range sr.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (sr *staticRegistry) GetDataset(_ context.Context, profile string) (domain.DatasetProfile, error) {
	p, ok := sr.profiles[profile]
	if !ok {
		return domain.DatasetProfile{}, fmt.Errorf("profile %s not found", profile)
	}
	return p, nil
}
