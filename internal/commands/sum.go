package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cfopsum-dev/cfopsum/internal/aggregate"
	"github.com/cfopsum-dev/cfopsum/internal/classify"
	"github.com/cfopsum-dev/cfopsum/internal/config"
	"github.com/cfopsum-dev/cfopsum/internal/diag"
	"github.com/cfopsum-dev/cfopsum/internal/extract"
	"github.com/cfopsum-dev/cfopsum/internal/report"
	"github.com/cfopsum-dev/cfopsum/internal/runlog"
)

func newSumCommand() *cobra.Command {
	var output string
	var configPath string
	var logFile string

	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Sum entry and exit values per sheet, per file, and overall",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, args, output, configPath, logFile)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "consolidated summary CSV path (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to cfopsum.yaml")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append run diagnostics to this CSV")

	return cmd
}

func runSum(cmd *cobra.Command, paths []string, output, configPath, logFile string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if output == "" {
		output = cfg.Export.Path
	}

	// Buffer each file in full; workbook parsing reads the bytes more than once.
	inputs := make([]aggregate.Input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		inputs = append(inputs, aggregate.Input{Name: filepath.Base(p), Data: data})
	}

	recorder := &diag.Recorder{}
	sink := diag.Tee{recorder, diag.Writer{W: cmd.ErrOrStderr()}}

	res := aggregate.Run(inputs, aggregate.Options{
		Columns:  classify.Columns{Code: cfg.Columns.Code, Amount: cfg.Columns.Amount},
		SkipRows: cfg.SkipRows,
		Registry: extract.DefaultRegistry(),
	}, sink)

	if logFile != "" && len(recorder.All()) > 0 {
		now := time.Now()
		entries := make([]runlog.Entry, 0, len(recorder.All()))
		for _, d := range recorder.All() {
			entries = append(entries, runlog.FromDiagnostic(d, now))
		}
		if err := runlog.Append(logFile, entries); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to write run log: %v\n", err)
		}
	}

	if len(inputs) == 0 {
		return nil
	}

	printSummary(cmd.OutOrStdout(), res)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()
	if err := report.WriteRecords(f, res.Records); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nConsolidated summary written to %s\n", output)
	return nil
}

func printSummary(w io.Writer, res aggregate.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARQUIVO\tSHEET\tENTRADA\tSAÍDA")
	for _, r := range res.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.File, r.Sheet, r.TotalIn.StringFixed(2), r.TotalOut.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARQUIVO\tENTRADA\tSAÍDA")
	for _, ft := range res.Files {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ft.File, ft.SumIn.StringFixed(2), ft.SumOut.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Entrada (CFOP 1xx, 2xx, 3xx): %s\n", res.Grand.SumIn.StringFixed(2))
	fmt.Fprintf(w, "Saída   (CFOP 5xx, 6xx, 7xx): %s\n", res.Grand.SumOut.StringFixed(2))
}
