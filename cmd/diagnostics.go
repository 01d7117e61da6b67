package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merethin/akari/catalog"
	"github.com/merethin/akari/config"
)

func newDiagnosticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnostics",
		Short: "Print the loaded configuration and catalog size without starting the pipeline",
		RunE:  diagnosticsCmdRun,
	}
}

// diagnosticsCmdRun loads configuration the same way the root command does,
// but stops short of opening the ingestion connection or any sink: it only
// reports what would run, for operators checking a config file before
// pointing the daemon at a live feed.
func diagnosticsCmdRun(cmd *cobra.Command, args []string) error {
	if err := config.Load(rootArgs.ConfigPath); err != nil {
		return err
	}
	cfg := config.Get()
	cat := catalog.New()

	fmt.Printf("config path:     %s\n", rootArgs.ConfigPath)
	fmt.Printf("input url:       %s\n", cfg.Input.URL)
	fmt.Printf("workers:         %d\n", cfg.Input.Workers)
	fmt.Printf("catalog entries: %d\n", cat.Len())
	fmt.Println("sinks:")
	fmt.Printf("  console:    enabled=%v\n", cfg.Output.Console.Enabled)
	fmt.Printf("  file:       enabled=%v path=%s\n", cfg.Output.File.Enabled, cfg.Output.File.Path)
	fmt.Printf("  broker:     enabled=%v exchange=%s\n", cfg.Output.Broker.Enabled, cfg.Output.Broker.ExchangeName)
	fmt.Printf("  relational: enabled=%v table=%s system_table=%s\n", cfg.Output.Relational.Enabled, cfg.Output.Relational.TableName, cfg.Output.Relational.SystemTableName)
	fmt.Printf("  document:   enabled=%v addresses=%v\n", cfg.Output.Document.Enabled, cfg.Output.Document.Addresses)
	fmt.Printf("watermark:       enabled=%v\n", cfg.Watermark.Enabled)

	return nil
}
