package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type BatchCmd struct {
	deps Deps
	file string
}

func NewBatchCmd(deps Deps) *cobra.Command {
	bc := &BatchCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Fetch overviews for every item in a JSON batch file",
		Long: `Fetch overviews for every item in a JSON batch file.

The file maps app ids to lists of market hash names:

  {"730": ["AK-47 | Redline (Field-Tested)"], "440": ["Mann Co. Supply Crate Key"]}

Items the market does not recognize appear in the output with empty columns.`,
		RunE: bc.run,
	}

	cmd.Flags().StringVar(&bc.file, "file", "", "Path to the JSON batch file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (bc *BatchCmd) run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(bc.file)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	// Decoded as loose JSON on purpose: the explorer's sanitizers and shape
	// checks are the contract for untyped input, so the file's keys may be
	// strings or numbers.
	var items any
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse batch file: %w", err)
	}

	explorer, err := bc.deps.NewExplorer(cmd)
	if err != nil {
		return err
	}

	result, err := explorer.GetOverviewsFromMap(cmd.Context(), items)
	if err != nil {
		return err
	}
	return bc.deps.Reporter.Overviews(result)
}
