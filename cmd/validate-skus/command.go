package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gunvolt24/wb_catalog/config"
	"github.com/Gunvolt24/wb_catalog/internal/usecase"
	"github.com/Gunvolt24/wb_catalog/pkg/logger"
	"github.com/Gunvolt24/wb_catalog/pkg/sku"
	"github.com/Gunvolt24/wb_catalog/pkg/validate"
)

// errInvalidRecords — во входных данных есть отклонённые записи (код выхода 1 без лишнего текста).
var errInvalidRecords = errors.New("invalid records found")

// options — флаги команды.
type options struct {
	in        string
	format    string
	merchant  string
	merchants string
	existing  string
	maxLength int
	verbose   bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "validate-skus",
		Short: "Validate product SKUs offline",
		Long: `Reads SKU check records ({"sku", "merchant_code"?, "owner_id"?}) from a JSON
or JSONL file (or stdin), writes reports of valid SKUs to stdout and reasons
for rejection to stderr. SKU uniqueness is checked within the batch and
against an optional list of already taken SKUs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, stdin, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.in, "in", "", `input file (.json or .jsonl); empty or "-" reads stdin`)
	f.StringVar(&opts.format, "format", string(validate.FormatAuto), "input format: auto|json|jsonl")
	f.StringVar(&opts.merchant, "merchant", "", "merchant code for records without merchant_code and unknown owners")
	f.StringVar(&opts.merchants, "merchants", "", "YAML file mapping owner_id to merchant code")
	f.StringVar(&opts.existing, "existing", "", "file with already taken SKUs, one per line")
	f.IntVar(&opts.maxLength, "max-length", 0, "maximum SKU length in characters (default from CATALOG_SKU_MAX_LENGTH)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every rejected record to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	format, err := validate.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	maxLength, err := resolveMaxLength(opts.maxLength)
	if err != nil {
		return err
	}

	resolver, err := buildResolver(opts)
	if err != nil {
		return err
	}

	index := validate.NewBatchIndex()
	if opts.existing != "" {
		if err := loadExisting(index, opts.existing); err != nil {
			return err
		}
	}

	logg := logger.FromZap(zap.NewNop())
	if opts.verbose {
		zl, err := newStderrLogger()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = zl.Sync() }()
		logg = logger.FromZap(zl)
	}

	checker := usecase.NewSKUService(sku.NewValidator(nil), resolver, index, logg, maxLength)
	sinks := validate.Sinks{Reports: stdout, Rejects: stderr}

	var sum validate.Summary
	if opts.in == "" || opts.in == "-" {
		sum, err = validate.ValidateReader(cmd.Context(), checker, stdin, format, sinks)
	} else {
		sum, err = validate.ValidateFile(cmd.Context(), checker, opts.in, format, sinks)
	}
	if err != nil {
		return fmt.Errorf("validation: %w (%s)", err, sum)
	}

	fmt.Fprintf(stderr, "validation done (%s)\n", sum)
	if sum.Invalid > 0 {
		return errInvalidRecords
	}
	return nil
}

// resolveMaxLength — значение флага или конфигурация окружения.
func resolveMaxLength(flagValue int) (int, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	if flagValue < 0 {
		return 0, fmt.Errorf("--max-length must be positive, got %d", flagValue)
	}
	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("load config: %w", err)
	}
	return cfg.SKU.MaxLength, nil
}

func buildResolver(opts *options) (*validate.StaticResolver, error) {
	resolver := validate.NewStaticResolver("", nil)
	if opts.merchants != "" {
		loaded, err := validate.LoadMerchants(opts.merchants)
		if err != nil {
			return nil, err
		}
		resolver = loaded
	}
	return resolver.WithDefault(opts.merchant), nil
}

func loadExisting(index *validate.BatchIndex, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open existing skus: %w", err)
	}
	defer f.Close()
	_, err = index.LoadExisting(f)
	return err
}

func newStderrLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
