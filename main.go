package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/idealo/mongodb-docvalidation-benchmarking/testcases"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dvbench",
		Short:        "Document validation benchmarks for MongoDB",
		SilenceUsage: true,
	}
	root.AddCommand(newListCommand(), newRunCommand())
	return root
}

func newListCommand() *cobra.Command {
	var asJSON bool
	var filter testcases.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered benchmark cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := testcases.Default().Filter(filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cases {
				if !asJSON {
					fmt.Fprintf(out, "%-50s %v\n", c.Name, c.Tags)
					continue
				}
				data, err := bson.MarshalExtJSON(c.Document(), false, false)
				if err != nil {
					return fmt.Errorf("encode %s: %w", c.Name, err)
				}
				fmt.Fprintln(out, string(data))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print every case as extended JSON")
	cmd.Flags().StringSliceVar(&filter.Include, "include", nil, "Only cases with one of these names or tags")
	cmd.Flags().StringSliceVar(&filter.Exclude, "exclude", nil, "Skip cases with one of these names or tags")
	cmd.Flags().StringVar(&filter.Pattern, "filter", "", "Regular expression on case names")
	return cmd
}

func newRunCommand() *cobra.Command {
	var configPath string
	flagConfig := defaultConfig()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the selected benchmark cases against a MongoDB deployment",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &config, flagConfig)
			if err := config.validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, config)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.StringVar(&flagConfig.URI, "uri", flagConfig.URI, "MongoDB URI")
	flags.StringVar(&flagConfig.Database, "db", flagConfig.Database, "Database holding the benchmark collection")
	flags.StringVar(&flagConfig.Collection, "collection", flagConfig.Collection, "Benchmark collection, dropped before every case")
	flags.StringVar(&flagConfig.Mode, "mode", flagConfig.Mode, "Run mode: duration or docs")
	flags.IntVar(&flagConfig.Threads, "threads", flagConfig.Threads, "Number of concurrent workers")
	flags.IntVar(&flagConfig.Duration, "duration", flagConfig.Duration, "Seconds to run each case in duration mode")
	flags.IntVar(&flagConfig.DocCount, "docs", flagConfig.DocCount, "Operations per case in docs mode")
	flags.StringVar(&flagConfig.OutputFilePrefix, "output", "", "Prefix of the CSV result files")
	flags.StringSliceVar(&flagConfig.Filter.Include, "include", nil, "Only cases with one of these names or tags")
	flags.StringSliceVar(&flagConfig.Filter.Exclude, "exclude", nil, "Skip cases with one of these names or tags")
	flags.StringVar(&flagConfig.Filter.Pattern, "filter", "", "Regular expression on case names")
	return cmd
}

// applyFlags copies every flag the user set explicitly over the file config.
func applyFlags(cmd *cobra.Command, config *TestingConfig, flagConfig TestingConfig) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("uri", func() { config.URI = flagConfig.URI })
	set("db", func() { config.Database = flagConfig.Database })
	set("collection", func() { config.Collection = flagConfig.Collection })
	set("mode", func() { config.Mode = flagConfig.Mode })
	set("threads", func() { config.Threads = flagConfig.Threads })
	set("duration", func() { config.Duration = flagConfig.Duration })
	set("docs", func() { config.DocCount = flagConfig.DocCount })
	set("output", func() { config.OutputFilePrefix = flagConfig.OutputFilePrefix })
	set("include", func() { config.Filter.Include = flagConfig.Filter.Include })
	set("exclude", func() { config.Filter.Exclude = flagConfig.Filter.Exclude })
	set("filter", func() { config.Filter.Pattern = flagConfig.Filter.Pattern })
}

func run(ctx context.Context, config TestingConfig) error {
	cases, err := testcases.Default().Filter(config.Filter)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no benchmark case matches the filter")
	}
	strategy, ok := newTestingStrategy(config.Mode)
	if !ok {
		return fmt.Errorf("unknown mode %q", config.Mode)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())

	collection := &MongoDBCollection{client.Database(config.Database).Collection(config.Collection)}

	runID := uuid.NewString()
	log.Printf("Run %s: %d cases against %s.%s", runID, len(cases), config.Database, config.Collection)

	results, runErr := strategy.runTestSequence(ctx, collection, cases, config)
	computeOverheads(results)

	filename := resultFilename(config.OutputFilePrefix, "summary")
	if err := writeSummary(filename, runID, results); err != nil {
		return err
	}
	fmt.Printf("Benchmarking completed. Summary of %d cases saved to %s\n", len(results), filename)
	return runErr
}
