package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JusmeJr93/random-user-gen-backend/config"
	"github.com/JusmeJr93/random-user-gen-backend/export"
	"github.com/JusmeJr93/random-user-gen-backend/generator"
	"github.com/JusmeJr93/random-user-gen-backend/locale"
	"github.com/JusmeJr93/random-user-gen-backend/logger"
	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
	"github.com/JusmeJr93/random-user-gen-backend/requests"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// genFlags are shared by generate and export.
type genFlags struct {
	region    string
	seed      string
	page      int
	batchSize int
	errors    float64
	errorMode string
	format    string
}

func (f *genFlags) register(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVar(&f.region, "region", "", "Region code (see the regions command)")
	cmd.Flags().StringVar(&f.seed, "seed", "", "Seed string")
	cmd.Flags().IntVar(&f.page, "page", generator.DefaultPage, "Page number, starting at 1")
	cmd.Flags().IntVar(&f.batchSize, "batch-size", generator.DefaultBatchSize, "Records per page")
	cmd.Flags().Float64Var(&f.errors, "errors", 0, "Errors per record (count mode) or per-field probability (rate mode)")
	cmd.Flags().StringVar(&f.errorMode, "error-mode", "count", "Error mode: count or rate")
	cmd.Flags().StringVar(&f.format, "format", defaultFormat, "Output format: json or csv")
}

// params runs the flags through the same validation as the HTTP API.
func (f *genFlags) params(cfg *config.Config) (generator.Params, error) {
	r := requests.NewReq("usergen")
	r.Append(requests.FieldRegion, f.region)
	r.Append(requests.FieldSeed, f.seed)
	r.Append(requests.FieldPage, strconv.Itoa(f.page))
	r.Append(requests.FieldBatchSize, strconv.Itoa(f.batchSize))
	r.Append(requests.FieldErrors, strconv.FormatFloat(f.errors, 'g', -1, 64))
	r.Append(requests.FieldErrorMode, f.errorMode)
	return r.Params(requests.Limits{MaxBatchSize: cfg.MaxBatchSize, MaxErrors: cfg.MaxErrors})
}

type deps struct {
	config *config.Config
	gen    *generator.Service
}

func newDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	log := logger.NewWriter(cfg, cmd.ErrOrStderr())
	table, err := locale.NewTable()
	if err != nil {
		return nil, fmt.Errorf("loading locale profiles: %w", err)
	}
	return &deps{
		config: cfg,
		gen:    generator.New(table, log, generator.Options{ReproducibleErrors: cfg.ReproducibleErrors}),
	}, nil
}

func newGenerateCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one page of records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newDeps(cmd)
			if err != nil {
				return err
			}
			p, err := f.params(e.config)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), f.format, e.gen.GeneratePage(p))
		},
	}
	f.register(cmd, formatJSON)
	return cmd
}

func newExportCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every record from page 1 through --page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newDeps(cmd)
			if err != nil {
				return err
			}
			p, err := f.params(e.config)
			if err != nil {
				return err
			}
			if total := p.Page * p.BatchSize; total > e.config.MaxExportRecords {
				return fmt.Errorf("export of %d records exceeds the limit of %d", total, e.config.MaxExportRecords)
			}
			return writeRecords(cmd.OutOrStdout(), f.format, e.gen.GenerateRange(p))
		},
	}
	f.register(cmd, formatCSV)
	return cmd
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List supported regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := locale.NewTable()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tTAG\tNAME")
			for _, info := range table.Regions() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Code, info.Tag, info.Name)
			}
			return tw.Flush()
		},
	}
}

func writeRecords(w io.Writer, format string, records []personaldata.Record) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatCSV:
		return export.WriteCSV(w, records)
	}
	return fmt.Errorf("unknown format %q, want %s or %s", format, formatJSON, formatCSV)
}
