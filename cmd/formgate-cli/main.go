package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	formgate "github.com/goliatone/go-formgate"
	"github.com/goliatone/go-formgate/pkg/model"
	"github.com/goliatone/go-formgate/pkg/render"
	"github.com/goliatone/go-formgate/pkg/renderers/tui"
	"github.com/goliatone/go-formgate/pkg/submission"
	"github.com/goliatone/go-formgate/pkg/validation"
)

// envConfig supplies defaults for the flags of the same name.
type envConfig struct {
	LogLevel string `env:"FORMGATE_LOG_LEVEL" envDefault:"warn"`
	Locale   string `env:"FORMGATE_LOCALE"`
	Schema   string `env:"FORMGATE_SCHEMA"`
	Messages string `env:"FORMGATE_MESSAGES"`
	Format   string `env:"FORMGATE_FORMAT" envDefault:"json"`
}

type report struct {
	AllValid bool                `json:"allValid"`
	Invalid  []string            `json:"invalid,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Values   json.RawMessage     `json:"values,omitempty"`
}

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, nil)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, driver tui.PromptDriver) int {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(stderr, "formgate: environment: %v\n", err)
		return exitUsage
	}

	flags := flag.NewFlagSet("formgate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	schemaPath := flags.String("schema", cfg.Schema, "registry file (YAML or JSON)")
	openapiPath := flags.String("openapi", "", "OpenAPI document to derive the registry from")
	operationID := flags.String("operation", "", "operation ID whose request body defines the form")
	valuesPath := flags.String("values", "", "JSON object of field values (- for stdin)")
	format := flags.String("format", cfg.Format, "interactive output format: json, form, pretty")
	interactive := flags.Bool("interactive", false, "prompt for every registered field")
	locale := flags.String("locale", cfg.Locale, "locale used to translate messages")
	messages := flags.String("messages", cfg.Messages, "message catalog file (YAML or JSON)")
	logLevel := flags.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	logger := newLogger(stderr, *logLevel)

	form, err := buildForm(ctx, logger, *schemaPath, *openapiPath, *operationID, *messages, *locale)
	if err != nil {
		logger.Error().Err(err).Msg("build form")
		return exitUsage
	}

	values, err := readValues(stdin, *valuesPath)
	if err != nil {
		logger.Error().Err(err).Msg("read values")
		return exitUsage
	}

	var (
		verdict model.Verdict
		output  []byte
	)
	if *interactive {
		options := []tui.Option{tui.WithOutputFormat(tui.OutputFormat(*format))}
		if driver != nil {
			options = append(options, tui.WithPromptDriver(driver))
		}
		session, err := tui.NewSession(form.Gate, options...)
		if err != nil {
			logger.Error().Err(err).Msg("start session")
			return exitUsage
		}
		result, err := session.Run(ctx, tui.FieldsFromSchema(form.Schema), values)
		switch {
		case errors.Is(err, submission.ErrSubmissionBlocked):
		case err != nil:
			logger.Error().Err(err).Msg("interactive session")
			return exitUsage
		}
		verdict, output = result.Verdict, result.Output
	} else {
		verdict = form.ValidateAll(values)
	}

	if err := writeReport(stdout, verdict, output, tui.OutputFormat(*format)); err != nil {
		logger.Error().Err(err).Msg("write report")
		return exitUsage
	}
	if !verdict.AllValid {
		return exitInvalid
	}
	return exitOK
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(parsed).
		With().
		Timestamp().
		Str("component", "formgate-cli").
		Logger()
}

func buildForm(ctx context.Context, logger zerolog.Logger, schemaPath, openapiPath, operationID, catalogPath, locale string) (*formgate.Form, error) {
	var engineOptions []validation.Option
	if catalogPath != "" {
		catalog, err := validation.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		engineOptions = append(engineOptions,
			validation.WithTranslator(catalog, locale),
			validation.WithMissingTranslationHandler(func(locale, key, fallback string, err error) string {
				logger.Debug().Str("locale", locale).Str("key", key).Err(err).Msg("missing translation")
				return fallback
			}),
		)
	}

	options := []formgate.Option{
		formgate.WithEngineOptions(engineOptions...),
		formgate.WithGateOptions(submission.WithLogger(logger)),
	}

	switch {
	case openapiPath != "":
		if operationID == "" {
			return nil, errors.New("formgate: -operation is required with -openapi")
		}
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, fmt.Errorf("formgate: read %s: %w", openapiPath, err)
		}
		return formgate.NewFromOpenAPI(ctx, data, operationID, options...)
	case schemaPath != "":
		return formgate.NewFromFile(schemaPath, options...)
	default:
		return nil, errors.New("formgate: one of -schema or -openapi is required")
	}
}

func readValues(stdin io.Reader, path string) (map[string]model.FieldValue, error) {
	if path == "" {
		return map[string]model.FieldValue{}, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("formgate: read values: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("formgate: decode values: %w", err)
	}
	return submission.ConvertValues(raw), nil
}

func writeReport(w io.Writer, verdict model.Verdict, output []byte, format tui.OutputFormat) error {
	out := report{
		AllValid: verdict.AllValid,
		Invalid:  verdict.Errors.Invalid(),
		Errors:   render.ErrorPayload(verdict.Errors),
	}
	if len(output) > 0 {
		if format == tui.OutputFormatJSON || format == "" {
			out.Values = json.RawMessage(output)
		} else {
			encoded, err := json.Marshal(string(output))
			if err != nil {
				return err
			}
			out.Values = encoded
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
