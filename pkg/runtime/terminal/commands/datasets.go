package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type DatasetsCmd struct {
	dataDir string
	globals *Globals
}

func NewDatasetsCmd(globals *Globals) *cobra.Command {
	dc := &DatasetsCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List dataset profiles and the input files they resolve to",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.dataDir, "data-dir", "", "Directory holding the input files (overrides data_dir)")

	return cmd
}

func (dc *DatasetsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dataDir := dc.globals.Settings.DataDir
	if cmd.Flags().Changed("data-dir") {
		dataDir = dc.dataDir
	}

	registry, err := dc.globals.Registry(dataDir)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dataset profiles: %w", err)
	}
	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No dataset profiles found")
		return nil
	}

	for _, name := range profiles {
		p, err := registry.GetDataset(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n  pool_blocksize: %s\n  blocksize:      %s\n  conf_delay:     %s\n  hash_rate:      %s\n",
			p.Name,
			p.Path(p.PoolBlockSize),
			p.Path(p.BlockSize),
			p.Path(p.ConfDelay),
			p.Path(p.HashRate))
	}

	return nil
}
