package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cdrn/snpreport/internal/genotype"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "snpreport",
		Short: "Analyze consumer DNA raw data locally",
		Long: `snpreport reads raw genotype exports from 23andMe, AncestryDNA and
similar services and produces health, trait, ancestry and polygenic
score reports. All analysis runs locally; no data leaves your machine.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (SNPREPORT_*)
  3. Config file (~/.snpreport.yaml)`,
		Example: `  # Full report from an AncestryDNA export
  snpreport report AncestryDNA.txt

  # Athletic score only, legacy weighting
  snpreport athletic genome.txt --mode legacy

  # Educational attainment score against GWAS summary statistics
  snpreport cognitive genome.txt --gwas EA_sumstats.tsv --top 5000`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.snpreport.yaml)")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newAthleticCmd())
	cmd.AddCommand(newCognitiveCmd())
	cmd.AddCommand(newHaplogroupCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".snpreport")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("SNPREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// newLogger builds the CLI logger. Output goes to stderr so reports on
// stdout stay pipeable.
func newLogger(cmd *cobra.Command) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func loadStore(path string, logger *zap.Logger) (*genotype.Store, error) {
	store, err := genotype.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded genotype file",
		zap.String("source", store.Metadata.Source),
		zap.Int("snps", store.Metadata.Count),
		zap.Int("build", store.Metadata.Build),
		zap.String("sex", store.Metadata.Sex))
	return store, nil
}
