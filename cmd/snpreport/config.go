package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cdrn/snpreport/internal/gwas"
	"github.com/cdrn/snpreport/internal/score"
)

// configKeys are the settings snpreport reads, with per-key validation so a
// typo'd mode or engine is caught at `config set` time instead of at the next
// report run.
var configKeys = map[string]struct {
	desc     string
	validate func(string) error
}{
	"gwas.path": {
		desc: "GWAS summary statistics file for the educational attainment score",
		validate: func(v string) error {
			if _, err := os.Stat(v); err != nil {
				return fmt.Errorf("cannot read %s: %w", v, err)
			}
			return nil
		},
	},
	"gwas.engine": {
		desc: "summary-statistics selection engine (go or duckdb)",
		validate: func(v string) error {
			_, err := gwas.NewEngine(v)
			return err
		},
	},
	"athletic.mode": {
		desc: "athletic scoring mode (logodds or legacy)",
		validate: func(v string) error {
			_, err := score.ParseMode(v)
			return err
		},
	},
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage snpreport configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.snpreport.yaml.",
		Example: `  snpreport config                                # show all config
  snpreport config set gwas.path EA_sumstats.tsv  # set the GWAS reference file
  snpreport config set athletic.mode legacy       # change the default scoring mode
  snpreport config get gwas.path                  # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), args[0])
		},
	}
}

func runConfigShow(w io.Writer) error {
	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Fprintln(w, "# No configuration set. Config file: ~/.snpreport.yaml")
		fmt.Fprintln(w, "# Available keys:")
		for _, key := range sortedConfigKeys() {
			fmt.Fprintf(w, "#   %s - %s\n", key, configKeys[key].desc)
		}
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(w, string(out))
	return nil
}

func runConfigSet(w io.Writer, key, value string) error {
	setting, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)",
			key, strings.Join(sortedConfigKeys(), ", "))
	}
	if err := setting.validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	viper.Set(key, value)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".snpreport.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(w io.Writer, key string) error {
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(w, val)
	return nil
}

func sortedConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for key := range configKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
