// Package main provides the CLI entry point for excel-lib.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CWK-Elocity/excel-lib/pkg/excellib"
	"github.com/CWK-Elocity/excel-lib/pkg/excellib/output"
	"github.com/CWK-Elocity/excel-lib/pkg/excellib/parser"
)

var (
	outputPath   string
	templatePath string
	sectionsPath string
	pretty       bool
	summary      bool
	verbose      bool
	noMediaScan  bool

	logger *zap.SugaredLogger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excellib",
		Short: "Extract structured records from spreadsheet forms",
		Long: `excellib learns a label template from an exemplar spreadsheet form
and extracts one structured record per data column from any file of
the same layout, tolerating inserted and removed rows.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&sectionsPath, "sections", "", "Sections alias config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&noMediaScan, "no-media-scan", false, "Skip xl/media archive enumeration")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Validate a workbook and report non-cell objects",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	templateCmd := &cobra.Command{
		Use:   "template [input.xlsx]",
		Short: "Build a label template from an exemplar form",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}
	templateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	templateCmd.Flags().BoolVar(&summary, "summary", false, "Print a row-ordered label listing instead of JSON")

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract records from a form using a saved template",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file path (required)")
	extractCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(inspectCmd, templateCmd, extractCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a console logger writing to stderr.
func newLogger(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

// loadForm loads the input file with the configured options and logs
// its advisory notices.
func loadForm(path string) (*excellib.FormFile, parser.SectionsConfig, error) {
	var cfg parser.SectionsConfig
	if sectionsPath != "" {
		var err error
		cfg, err = excellib.LoadSectionsConfig(sectionsPath)
		if err != nil {
			return nil, cfg, err
		}
	}

	opts := excellib.DefaultOptions()
	opts.Sections = cfg
	if noMediaScan {
		scan := false
		opts.ScanMedia = &scan
	}

	form, err := excellib.Load(path, opts)
	if err != nil {
		return nil, cfg, err
	}

	for _, notice := range form.Report.Notices {
		logger.Warn(notice)
	}
	for _, obj := range form.Report.NonCellObjects {
		logger.Warn(obj)
	}
	logger.Debugf("loaded %s: %d rows, %d columns, %d sections",
		path, form.Grid.Rows(), form.Grid.Cols(), form.Sections.Len())

	return form, cfg, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	form, _, err := loadForm(args[0])
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(form.Report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeResult(jsonData)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	form, cfg, err := loadForm(args[0])
	if err != nil {
		return err
	}

	tpl := form.BuildTemplate(cfg)

	if summary {
		for _, line := range output.SummarizeTemplate(tpl) {
			fmt.Println(line)
		}
		return nil
	}

	jsonData, err := output.ToJSON(tpl, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeResult(jsonData)
}

func runExtract(cmd *cobra.Command, args []string) error {
	form, cfg, err := loadForm(args[0])
	if err != nil {
		return err
	}

	tplData, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	tpl, err := output.TemplateFromJSON(tplData)
	if err != nil {
		return err
	}

	groups, notices, err := form.Extract(tpl, cfg)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	for _, notice := range notices {
		logger.Warn(notice)
	}
	logger.Infof("extracted %d record groups", len(groups))

	jsonData, err := output.ToJSON(groups, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeResult(jsonData)
}

// writeResult writes JSON to the output path or stdout.
func writeResult(jsonData []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
