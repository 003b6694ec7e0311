package commands

import (
	"github.com/spf13/cobra"
)

type VolumeCmd struct {
	deps  Deps
	appID int
	name  string
}

func NewVolumeCmd(deps Deps) *cobra.Command {
	vc := &VolumeCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Fetch the 24h sale volume of an item",
		RunE:  vc.run,
	}

	cmd.Flags().IntVar(&vc.appID, "app-id", 0, "App ID of the game the item is from")
	cmd.Flags().StringVar(&vc.name, "name", "", "Market hash name of the item")

	_ = cmd.MarkFlagRequired("app-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (vc *VolumeCmd) run(cmd *cobra.Command, args []string) error {
	explorer, err := vc.deps.NewExplorer(cmd)
	if err != nil {
		return err
	}

	volume, err := explorer.GetVolume(cmd.Context(), vc.appID, vc.name)
	if err != nil {
		return err
	}
	return vc.deps.Reporter.Volume(vc.name, volume)
}
