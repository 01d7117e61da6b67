// Package cmd wires the daemon's cobra CLI: a single root command that
// bootstraps configuration, logging, the sink dispatcher, and the ordered
// classification pipeline, plus a thin diagnostics subcommand.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/iancoleman/strcase"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/merethin/akari/catalog"
	"github.com/merethin/akari/config"
	"github.com/merethin/akari/events"
	"github.com/merethin/akari/ingest"
	"github.com/merethin/akari/logging"
	"github.com/merethin/akari/pipeline"
	"github.com/merethin/akari/sink"
)

var rootArgs struct {
	ConfigPath string
	LogLevel   string
	Only       []string
}

var rootCmd = &cobra.Command{
	Use:   "akari",
	Short: "Classify and fan out a NationStates-style happening feed",
	RunE:  rootCmdRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootArgs.ConfigPath, "config", "c", config.DefaultLocation, "path to the TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&rootArgs.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().StringSliceVar(&rootArgs.Only, "only", nil, "restrict every sink to these categories, on top of its own include/exclude filter")

	rootCmd.AddCommand(newDiagnosticsCommand())
	rootCmd.AddCommand(newVersionCommand())
}

// Execute runs the root command, exiting the process with a non-zero code
// on startup misconfiguration or fatal sink initialization failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// normalizeOnly converts each --only value to the catalog's canonical
// category tags, which are runs of lowercase letters with no separator
// (e.g. "rochange"). strcase.ToSnake does the word-boundary splitting
// ("RoChange" -> "ro_change") so "RoChange", "ro_change", and "ro-change"
// all collapse to the same tag once the separator is stripped back out.
func normalizeOnly(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		snake := strcase.ToSnake(strings.ReplaceAll(v, "-", "_"))
		out[i] = strings.ReplaceAll(snake, "_", "")
	}
	return out
}

// restrictFilter narrows f's include set to the intersection with only,
// when only is non-empty; an empty include set on f is treated as "every
// category" so it is replaced outright.
func restrictFilter(f config.SinkFilter, only []string) config.SinkFilter {
	if len(only) == 0 {
		return f
	}
	if len(f.Include) == 0 {
		f.Include = only
		return f
	}
	var narrowed []string
	for _, c := range f.Include {
		for _, o := range only {
			if c == o {
				narrowed = append(narrowed, c)
				break
			}
		}
	}
	if len(narrowed) == 0 {
		// No overlap: an empty include set would allow every category, so
		// include and exclude the --only tags together, letting nothing pass.
		f.Include = only
		f.Exclude = append(append([]string(nil), f.Exclude...), only...)
		return f
	}
	f.Include = narrowed
	return f
}

func rootCmdRun(cmd *cobra.Command, args []string) error {
	if err := config.Load(rootArgs.ConfigPath); err != nil {
		return errors.Wrap(err, "cmd: failed to load configuration")
	}
	if err := logging.Configure(rootArgs.LogLevel); err != nil {
		return errors.Wrap(err, "cmd: failed to configure logging")
	}
	cfg := config.Get()

	dispatcher, watermark, err := buildDispatcher(cfg, normalizeOnly(rootArgs.Only))
	if err != nil {
		return errors.Wrap(err, "cmd: failed to initialize sinks")
	}
	defer dispatcher.Close()
	if watermark != nil {
		defer watermark.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.New()
	seq := &pipeline.SequenceCounter{}
	work := make(chan events.SequencedMessage, 4096)
	results := make(chan pipeline.Result, 4096)

	client := ingest.NewClient(ingest.ClientConfig{URL: cfg.Input.URL, UserAgent: cfg.UserAgent}, seq, work)
	reorder := pipeline.NewReorder(dispatcher, watermark)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := client.Run(gctx)
		close(work)
		return err
	})
	g.Go(func() error {
		pipeline.RunWorkers(cfg.Input.Workers, cat, work, results)
		return nil
	})
	g.Go(func() error {
		reorder.Run(gctx, results)
		return nil
	})

	log.WithField("workers", cfg.Input.Workers).WithField("sinks", dispatcher.Len()).Info("cmd: pipeline started")
	return g.Wait()
}

// buildDispatcher constructs every sink enabled in cfg, wiring in the
// environment-derived connection strings config.Load already validated as
// present. only, when non-empty, further restricts every sink's filter.
func buildDispatcher(cfg *config.Configuration, only []string) (*sink.Dispatcher, *redis.Client, error) {
	d := sink.NewDispatcher()

	// Registration order fixes the broadcast order (§4.5): broker, console,
	// file, relational, document-store.
	if cfg.Output.Broker.Enabled {
		b, err := sink.NewBroker(cfg.RabbitMQURL, cfg.Output.Broker.ExchangeName)
		if err != nil {
			return nil, nil, err
		}
		d.Add("broker", b, restrictFilter(cfg.Output.Broker.SinkFilter, only))
	}

	if cfg.Output.Console.Enabled {
		d.Add("console", sink.NewConsole(), restrictFilter(cfg.Output.Console.SinkFilter, only))
	}

	if cfg.Output.File.Enabled {
		f, err := sink.NewFile(cfg.Output.File.Path, cfg.Output.File.MaxFiles, cfg.Output.File.Threshold)
		if err != nil {
			return nil, nil, err
		}
		d.Add("file", f, restrictFilter(cfg.Output.File.SinkFilter, only))
	}

	if cfg.Output.Relational.Enabled {
		r, err := sink.NewRelational(cfg.DatabaseURL, cfg.Output.Relational.TableName, cfg.Output.Relational.SystemTableName)
		if err != nil {
			return nil, nil, err
		}
		d.Add("relational", r, restrictFilter(cfg.Output.Relational.SinkFilter, only))
	}

	if cfg.Output.Document.Enabled {
		doc, err := sink.NewDocument(cfg.Output.Document.Addresses)
		if err != nil {
			return nil, nil, err
		}
		d.Add("document", doc, restrictFilter(cfg.Output.Document.SinkFilter, only))
	}

	var watermark *redis.Client
	if cfg.Watermark.Enabled {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "cmd: failed to parse REDIS_URL")
		}
		watermark = redis.NewClient(opts)
	}

	return d, watermark, nil
}
