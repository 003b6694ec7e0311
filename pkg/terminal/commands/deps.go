package commands

import (
	"github.com/spf13/cobra"

	"github.com/de-tools/market-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/market-atlas/pkg/services/market"
)

// Deps is what every command needs: a reporter for output and a factory that
// builds an explorer from the root command's persistent flags.
type Deps struct {
	Reporter    *export.Reporter
	NewExplorer func(cmd *cobra.Command) (market.Explorer, error)
}
