package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"github.com/CristiGvl/picoIRQ/internal/interrupts"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

var snapshotOpts struct {
	output    string
	totalOnly bool
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [filter]",
	Short: "Print the current interrupt counters",
	Long: `Print one record per /proc/interrupts line matching filter.

The filter is a regular expression searched in the raw line text, so it can
match a device name, a controller type or an IRQ label. It defaults to ".",
which selects every line.`,
	Example: `  picoirq snapshot
  picoirq snapshot rtc0
  picoirq snapshot 'iwlwifi|rtc0|NMI' --total`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := interrupts.DefaultFilter
		if len(args) == 1 {
			filter = args[0]
		}
		reader := interrupts.NewReader(cfg.ProcPath)
		return runSnapshot(cmd.Context(), reader, filter, cmd.OutOrStdout())
	},
}

func init() {
	flags := snapshotCmd.Flags()
	flags.StringVarP(&snapshotOpts.output, "output", "o", outputJSON, "Output format (json, table)")
	flags.BoolVar(&snapshotOpts.totalOnly, "total", false, "Only print the IRQ, device and total of each row")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(ctx context.Context, reader interrupts.Reader, filter string, w io.Writer) error {
	seq, err := reader.Snapshot(ctx, filter)
	if err != nil {
		return err
	}

	switch snapshotOpts.output {
	case outputJSON:
		return writeJSON(seq, w)
	case outputTable:
		return writeTable(seq, w)
	default:
		return errors.Errorf("unknown output format %q", snapshotOpts.output)
	}
}

// writeJSON prints one JSON object per row as soon as it is parsed.
func writeJSON(seq iter.Seq2[interrupts.Row, error], w io.Writer) error {
	enc := json.NewEncoder(w)
	for row, err := range seq {
		if err != nil {
			return err
		}
		var v any = row
		if snapshotOpts.totalOnly {
			v = struct {
				IRQ    string
				Device string
				Total  uint64
			}{row.IRQ, row.Device, row.Total}
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(seq iter.Seq2[interrupts.Row, error], w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if snapshotOpts.totalOnly {
		fmt.Fprintln(tw, "IRQ\tDEVICE\tTOTAL")
	} else {
		fmt.Fprintln(tw, "IRQ\tTOTAL\tTYPE\tEDGE\tDEVICE\tPER CPU")
	}

	for row, err := range seq {
		if err != nil {
			tw.Flush()
			return err
		}
		if snapshotOpts.totalOnly {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", row.IRQ, row.Device, row.Total)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%v\n", row.IRQ, row.Total, row.Type, row.Edge, row.Device, row.PerCPU)
	}
	return tw.Flush()
}
