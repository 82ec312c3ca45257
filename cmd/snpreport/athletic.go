package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cdrn/snpreport/internal/report"
	"github.com/cdrn/snpreport/internal/score"
)

func newAthleticCmd() *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "athletic <dna-file>",
		Short: "Compute the endurance/power polygenic score",
		Long: `Score the endurance versus power marker panel. The default logodds
mode weights each marker by the natural log of its published odds
ratio; legacy mode gives every marker unit weight.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mode") {
				if configured := viper.GetString("athletic.mode"); configured != "" {
					modeName = configured
				}
			}
			mode, err := score.ParseMode(modeName)
			if err != nil {
				return err
			}

			logger := newLogger(cmd)
			defer logger.Sync()

			store, err := loadStore(args[0], logger)
			if err != nil {
				return err
			}

			scorer := score.NewScorer(store)
			scorer.SetLogger(logger)
			report.NewFormatter(cmd.OutOrStdout()).WriteAthletic(scorer.Score(mode))
			return nil
		},
	}

	cmd.Flags().StringVar(&modeName, "mode", "logodds", "scoring mode: logodds or legacy")

	return cmd
}
