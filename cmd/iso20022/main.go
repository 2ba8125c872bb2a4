package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"

	iso "github.com/open-payments/iso20022"
	"github.com/open-payments/iso20022/batch"
	"github.com/open-payments/iso20022/catalog"
	"github.com/open-payments/iso20022/codec"
	"github.com/open-payments/iso20022/config"
	"github.com/open-payments/iso20022/i18n"
	"github.com/open-payments/iso20022/pacs"
	"github.com/open-payments/iso20022/sample"
)

// errFailed signals that validation reported failures already printed.
var errFailed = errors.New("one or more documents failed validation")

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	err := run(context.Background(), os.Args[1], os.Args[2:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case errors.Is(err, errFailed):
		os.Exit(1)
	default:
		fatalf("%s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, sub string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	switch sub {
	case "validate":
		return validateCmd(ctx, args, stdin, stdout, stderr)
	case "convert":
		return convertCmd(ctx, args, stdin, stdout, stderr)
	case "sample":
		return sampleCmd(args, stdout, stderr)
	case "kinds":
		return kindsCmd(args, stdout, stderr)
	default:
		usage(stderr)
		return flag.ErrHelp
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "iso20022 CLI\n\nUsage:\n  iso20022 validate [-config file] [-lang en|ja] [-workers n] file...\n  iso20022 convert [-config file] -to xml|json [-o out] [file]\n  iso20022 sample [-config file] [-n count] [-format xml|json] [-envelope] [-status code]\n  iso20022 kinds [-config file]\n\nNotes:\n  - A file argument of - reads standard input.\n  - Settings come from the config file, then ISO20022_* environment variables, then flags.")
}

// common holds the flags shared by every subcommand.
type common struct {
	configPath string
	families   string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML or TOML configuration file")
	fs.StringVar(&c.families, "families", "", "comma-separated message families to load (default: all compiled in)")
}

func (c *common) load() (*config.Config, *iso.Registry, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, nil, err
		}
	}
	if c.families != "" {
		cfg.Families = splitCSV(c.families)
	}
	reg, err := catalog.NewRegistry(cfg.Families...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, reg, nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func validateCmd(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("validate", stderr)
	var c common
	c.register(fs)
	var lang string
	var workers int
	fs.StringVar(&lang, "lang", "", "message language, en or ja")
	fs.IntVar(&workers, "workers", 0, "concurrent validations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return flag.ErrHelp
	}
	cfg, reg, err := c.load()
	if err != nil {
		return err
	}
	if lang != "" {
		cfg.Language = lang
	}
	if workers > 0 {
		cfg.Batch.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg.Logging, stderr)

	inputs := make([]batch.Input, 0, fs.NArg())
	for _, name := range fs.Args() {
		data, err := readInput(name, stdin)
		if err != nil {
			return err
		}
		inputs = append(inputs, batch.Input{Name: name, Data: data})
	}

	opts := []batch.Option{
		batch.WithLogger(logger),
		batch.WithMaxSize(cfg.Batch.MaxSize),
		batch.WithTimeout(cfg.Batch.Timeout),
	}
	var metricsReg *prometheus.Registry
	if cfg.Metrics.Enabled {
		metricsReg = prometheus.NewRegistry()
		m, err := batch.NewMetrics(metricsReg, cfg.Metrics.Namespace)
		if err != nil {
			return err
		}
		opts = append(opts, batch.WithMetrics(m))
	}

	runner := batch.New(reg, cfg.Batch.Workers, opts...)
	defer runner.Close()
	results := runner.Run(ctx, inputs)

	tr := i18n.For(cfg.Language)
	failed := 0
	for _, res := range results {
		if res.OK() {
			fmt.Fprintf(stdout, "%s: OK %s\n", res.Name, res.Kind)
			continue
		}
		failed++
		if ve, ok := iso.AsValidationError(res.Err); ok {
			fmt.Fprintf(stdout, "%s: FAIL %d %s %s\n", res.Name, ve.Code, ve.Path, ve.Localize(tr))
			continue
		}
		fmt.Fprintf(stdout, "%s: ERROR %v\n", res.Name, res.Err)
	}

	if metricsReg != nil {
		if err := writeMetrics(stderr, metricsReg); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

func convertCmd(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("convert", stderr)
	var c common
	c.register(fs)
	var to, out, indent string
	fs.StringVar(&to, "to", "", "target format, xml or json (default: the configured output format)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.StringVar(&indent, "indent", "", "indentation (default: the configured indent)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, reg, err := c.load()
	if err != nil {
		return err
	}
	if to == "" {
		to = cfg.Output.Format
	}
	if indent == "" {
		indent = cfg.Output.Indent
	}
	name := "-"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}
	data, err := readInput(name, stdin)
	if err != nil {
		return err
	}

	xmlc, jsonc := codec.XML(reg, indent), codec.JSON(reg, indent)
	from := xmlc
	if isJSON(data) {
		from = jsonc
	}
	var target codec.Codec[[]byte, iso.Document]
	switch to {
	case "xml":
		target = xmlc
	case "json":
		target = jsonc
	default:
		return fmt.Errorf("unknown target format %q", to)
	}
	converted, err := codec.Convert(ctx, from, target, data)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging, stderr)
	logger.Debug().Str("input", name).Str("to", to).Int("bytes", len(converted)).Msg("converted")
	return writeOutput(out, stdout, converted)
}

func sampleCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("sample", stderr)
	var c common
	c.register(fs)
	var n int
	var format, status, reason, ccy string
	var amount float64
	var envelope bool
	fs.IntVar(&n, "n", 1, "transactions in the credit transfer")
	fs.StringVar(&format, "format", "", "xml or json (default: the configured output format)")
	fs.StringVar(&ccy, "ccy", "USD", "currency")
	fs.Float64Var(&amount, "amount", 100, "amount per transaction")
	fs.BoolVar(&envelope, "envelope", false, "wrap the credit transfer with its AppHdr (xml only)")
	fs.StringVar(&status, "status", "", "emit a pacs.002 answering the transfer with this status (ACSC, RJCT...)")
	fs.StringVar(&reason, "reason", "", "status reason code for -status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, reg, err := c.load()
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Output.Format
	}
	indent := cfg.Output.Indent
	if indent == "" {
		indent = "  "
	}

	g := sample.New(sample.Options{Transactions: n, Currency: ccy, Amount: amount})
	if envelope {
		if format != "xml" {
			return fmt.Errorf("-envelope requires xml output")
		}
		env, err := g.Envelope()
		if err != nil {
			return err
		}
		return env.WriteXML(stdout, indent)
	}

	ct, err := g.CreditTransfer()
	if err != nil {
		return err
	}
	doc := iso.NewDocument(ct)
	if status != "" {
		rpt, err := g.StatusReport(ct, pacs.ExternalPaymentTransactionStatus1Code(status), reason)
		if err != nil {
			return err
		}
		doc = iso.NewDocument(rpt)
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case "xml":
		if err := doc.WriteXML(&buf, indent); err != nil {
			return err
		}
	case "json":
		b, err := codec.JSON(reg, indent).Encode(context.Background(), doc)
		if err != nil {
			return err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

func kindsCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("kinds", stderr)
	var c common
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, reg, err := c.load()
	if err != nil {
		return err
	}
	for _, k := range reg.Kinds() {
		fmt.Fprintf(stdout, "%-18s %-8s %s\n", k.ID, k.Family(), k.Root)
	}
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func isJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func newLogger(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "iso20022").Logger()
}
