package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/pixel-racer/track"
)

func newTracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "List and export track geometry",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the registered track names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := buildRegistry(viper.GetViper(), zap.NewNop())
			if err != nil {
				return err
			}
			return listTracks(reg, cmd.OutOrStdout())
		},
	}

	var outDir string
	export := &cobra.Command{
		Use:   "export [names...]",
		Short: "Write track masks and manifests, one directory per track",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(viper.GetViper(), zap.NewNop())
			if err != nil {
				return err
			}
			return exportTracks(reg, args, outDir, cmd.OutOrStdout())
		},
	}
	export.Flags().StringVar(&outDir, "out", "tracks", "output directory")

	cmd.AddCommand(list, export)
	return cmd
}

func listTracks(reg *track.Registry, out io.Writer) error {
	for _, name := range reg.Names() {
		g, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %dx%d waypoints=%d\n", name, g.Width(), g.Height(), len(g.Waypoints))
	}
	return nil
}

// exportTracks saves the named tracks, or all of them, under outDir/<name>
// in the layout that --track-dir loads back
func exportTracks(reg *track.Registry, names []string, outDir string, out io.Writer) error {
	if len(names) == 0 {
		names = reg.Names()
	}
	geometries, err := reg.Resolve(names)
	if err != nil {
		return err
	}
	for _, g := range geometries {
		path, err := track.Save(filepath.Join(outDir, g.Name), g)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
	}
	return nil
}
