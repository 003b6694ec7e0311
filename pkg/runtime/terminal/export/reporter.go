package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  48,
		ValueWidth: 14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Overviews renders a batch result as a table, one row per item. Items the
// market did not recognize render with dashes in every column.
func (r *Reporter) Overviews(result map[string]*domain.PriceOverview) error {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	r.separator(4)
	r.row("Item", "Lowest", "Median", "Volume")
	r.separator(4)
	for _, name := range names {
		o := result[name]
		if o == nil {
			r.row(name, "-", "-", "-")
			continue
		}
		r.row(name, orDash(o.LowestPrice), orDash(o.MedianPrice), orDash(o.Volume))
	}
	r.separator(4)
	return nil
}

// Stats renders the typed overview of a single item.
func (r *Reporter) Stats(name string, stats *domain.OverviewStats) error {
	if stats == nil {
		_, err := fmt.Fprintf(r.writer, "%s: not found\n", name)
		return err
	}
	_, err := fmt.Fprintf(r.writer, "%s\n  lowest: %s\n  median: %s\n  volume: %s\n",
		name, decimalOrDash(stats.LowestPrice), decimalOrDash(stats.MedianPrice), volumeOrDash(stats.Volume))
	return err
}

// Price renders one price statistic.
func (r *Reporter) Price(name string, priceType string, value *decimal.Decimal) error {
	_, err := fmt.Fprintf(r.writer, "%s %s: %s\n", name, priceType, decimalOrDash(value))
	return err
}

// Volume renders the sale volume of one item.
func (r *Reporter) Volume(name string, value *int64) error {
	_, err := fmt.Fprintf(r.writer, "%s volume: %s\n", name, volumeOrDash(value))
	return err
}

func (r *Reporter) row(name string, values ...string) {
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, fmt.Sprintf("%-*s", r.config.NameWidth, name))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%-*s", r.config.ValueWidth, value))
	}
	fmt.Fprintf(r.writer, "| %s |\n", strings.Join(parts, " | "))
}

func (r *Reporter) separator(cols int) {
	parts := make([]string, 0, cols)
	parts = append(parts, strings.Repeat("-", r.config.NameWidth+2))
	for i := 1; i < cols; i++ {
		parts = append(parts, strings.Repeat("-", r.config.ValueWidth+2))
	}
	fmt.Fprintf(r.writer, "+%s+\n", strings.Join(parts, "+"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func decimalOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(2)
}

func volumeOrDash(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
