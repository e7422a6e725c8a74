package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/typeflow/config"
	"github.com/wippyai/typeflow/csvinput"
)

var (
	cfgFile   string
	typesFlag string
	delimFlag string
	lenient   bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "typeflow",
	Short: "Typed record ingestion for delimited text",
	Long: `typeflow reads delimited text into typed records.

Column types come from --types or from the ingestion config file. Use
"skip" for columns that are present but should not be read.

Examples:
  typeflow parse data.csv --types int64,string,skip,double
  typeflow encode data.csv --types int64,string -o data.bin
  typeflow decode data.bin --types int64,string`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "ingestion config file (default $"+config.EnvConfigFile+")")
	pf.StringVarP(&typesFlag, "types", "t", "", "comma separated column types, overrides the config")
	pf.StringVarP(&delimFlag, "delim", "d", "", "field delimiter, overrides the config")
	pf.BoolVar(&lenient, "lenient", false, "drop short and malformed records instead of failing")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		log, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	csvinput.SetLogger(log)
	config.SetLogger(log)
	return nil
}

// loadIngestion merges the config file with command line overrides.
func loadIngestion(cmd *cobra.Command) (*config.Ingestion, error) {
	var opts []config.Option
	if cfgFile != "" {
		opts = append(opts, config.WithConfigPath(cfgFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("types") {
		cfg.FieldTypes = strings.Split(typesFlag, ",")
	}
	if flags.Changed("delim") {
		cfg.FieldDelimiter = delimFlag
	}
	if flags.Changed("lenient") {
		cfg.Lenient = lenient
	}
	return cfg, nil
}

func loadFormat(cmd *cobra.Command) (*csvinput.Format, error) {
	cfg, err := loadIngestion(cmd)
	if err != nil {
		return nil, err
	}
	return cfg.Format()
}
