package commands

import (
	"github.com/spf13/cobra"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

type OverviewCmd struct {
	deps  Deps
	appID int
	name  string
	raw   bool
}

func NewOverviewCmd(deps Deps) *cobra.Command {
	oc := &OverviewCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Fetch the price overview of one item",
		RunE:  oc.run,
	}

	cmd.Flags().IntVar(&oc.appID, "app-id", 0, "App ID of the game the item is from")
	cmd.Flags().StringVar(&oc.name, "name", "", "Market hash name of the item")
	cmd.Flags().BoolVar(&oc.raw, "raw", false, "Print the formatted strings instead of parsed values")

	_ = cmd.MarkFlagRequired("app-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (oc *OverviewCmd) run(cmd *cobra.Command, args []string) error {
	explorer, err := oc.deps.NewExplorer(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if oc.raw {
		overview, err := explorer.GetOverview(ctx, oc.appID, oc.name)
		if err != nil {
			return err
		}
		return oc.deps.Reporter.Overviews(map[string]*domain.PriceOverview{oc.name: overview})
	}

	stats, err := explorer.GetStats(ctx, oc.appID, oc.name)
	if err != nil {
		return err
	}
	return oc.deps.Reporter.Stats(oc.name, stats)
}
