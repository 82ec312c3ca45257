package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cdrn/snpreport/internal/annotate"
	"github.com/cdrn/snpreport/internal/catalog"
	"github.com/cdrn/snpreport/internal/gwas"
	"github.com/cdrn/snpreport/internal/report"
	"github.com/cdrn/snpreport/internal/score"
)

func newReportCmd() *cobra.Command {
	var (
		noAthletic  bool
		noCognitive bool
		quick       bool
		healthOnly  bool
		gwasPath    string
		engineName  string
	)

	cmd := &cobra.Command{
		Use:   "report <dna-file>",
		Short: "Generate the full DNA report",
		Long: `Parse a raw genotype export and print every report section: health
and trait annotations, Y-haplogroup, the athletic polygenic score and,
when GWAS summary statistics are configured, the educational attainment
polygenic score.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			defer logger.Sync()

			store, err := loadStore(args[0], logger)
			if err != nil {
				return err
			}

			f := report.NewFormatter(cmd.OutOrStdout())
			f.WriteHeader(store.Metadata)

			annotator := annotate.NewAnnotator(store)
			annotator.SetLogger(logger)
			records, summary := annotator.AnnotateAll()

			categories := catalog.Categories
			if healthOnly {
				categories = []catalog.Category{
					catalog.CategoryPharmacogenomic,
					catalog.CategoryDiseaseRisk,
				}
			}
			for _, cat := range categories {
				f.WriteCategory(cat, records[cat])
			}

			if !healthOnly {
				if hg, ok := annotate.PredictYHaplogroup(store); ok {
					f.WriteHaplogroup(hg)
				} else {
					logger.Debug("haplogroup prediction skipped")
				}
			}

			if !quick && !healthOnly && !noAthletic {
				scorer := score.NewScorer(store)
				scorer.SetLogger(logger)
				f.WriteAthletic(scorer.Score(score.ModeLogEffect))
			}

			if gwasPath == "" {
				gwasPath = viper.GetString("gwas.path")
			}
			if engineName == "" {
				engineName = viper.GetString("gwas.engine")
			}
			if !quick && !healthOnly && !noCognitive && gwasPath != "" {
				engine, err := gwas.NewEngine(engineName)
				if err != nil {
					return err
				}
				if closer, ok := engine.(*gwas.DuckDBEngine); ok {
					defer closer.Close()
				}
				scorer := gwas.NewScorer(store, engine, gwasPath)
				scorer.SetLogger(logger)
				res, err := scorer.Score(gwas.Selection{PThreshold: 5e-8})
				if err != nil {
					// The rest of the report is still useful without it.
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping educational attainment score: %v\n", err)
				} else {
					f.WriteCognitive(res)
				}
			}

			f.WriteSummary(summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noAthletic, "no-athletic", false, "skip the athletic score section")
	cmd.Flags().BoolVar(&noCognitive, "no-cognitive", false, "skip the educational attainment score section")
	cmd.Flags().BoolVar(&quick, "quick", false, "annotations only, skip polygenic scores")
	cmd.Flags().BoolVar(&healthOnly, "health-only", false, "pharmacogenomics and disease risk sections only")
	cmd.Flags().StringVar(&gwasPath, "gwas", "", "GWAS summary statistics file (default from config gwas.path)")
	cmd.Flags().StringVar(&engineName, "engine", "", "selection engine: go or duckdb")

	return cmd
}

func newHaplogroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "haplogroup <dna-file>",
		Short: "Predict the Y-chromosome haplogroup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			defer logger.Sync()

			store, err := loadStore(args[0], logger)
			if err != nil {
				return err
			}

			hg, ok := annotate.PredictYHaplogroup(store)
			if !ok {
				return fmt.Errorf("no Y-haplogroup call possible: file has no usable Y-chromosome markers (detected sex: %q)", store.Metadata.Sex)
			}
			report.NewFormatter(cmd.OutOrStdout()).WriteHaplogroup(hg)
			return nil
		},
	}
}
