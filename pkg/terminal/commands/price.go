package commands

import (
	"github.com/spf13/cobra"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

type PriceCmd struct {
	deps      Deps
	appID     int
	name      string
	priceType string
}

func NewPriceCmd(deps Deps) *cobra.Command {
	pc := &PriceCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Fetch a single price statistic of an item",
		RunE:  pc.run,
	}

	cmd.Flags().IntVar(&pc.appID, "app-id", 0, "App ID of the game the item is from")
	cmd.Flags().StringVar(&pc.name, "name", "", "Market hash name of the item")
	cmd.Flags().StringVar(&pc.priceType, "type", string(domain.PriceTypeLowest),
		"Price statistic to fetch (lowest_price or median_price)")

	_ = cmd.MarkFlagRequired("app-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (pc *PriceCmd) run(cmd *cobra.Command, args []string) error {
	explorer, err := pc.deps.NewExplorer(cmd)
	if err != nil {
		return err
	}

	price, err := explorer.GetPrice(cmd.Context(), pc.appID, pc.name, pc.priceType)
	if err != nil {
		return err
	}
	return pc.deps.Reporter.Price(pc.name, pc.priceType, price)
}
