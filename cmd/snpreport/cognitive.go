package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cdrn/snpreport/internal/gwas"
	"github.com/cdrn/snpreport/internal/report"
)

func newCognitiveCmd() *cobra.Command {
	var (
		gwasPath    string
		pThreshold  float64
		topN        int
		compare     bool
		topAnalysis bool
		engineName  string
	)

	cmd := &cobra.Command{
		Use:   "cognitive <dna-file>",
		Short: "Compute the educational attainment polygenic score",
		Long: `Score your genotypes against GWAS summary statistics for educational
attainment (Lee et al. 2018). Variant selection is either a p-value
threshold or the N most significant SNPs; --compare and --top-analysis
run a ladder of selections to show score stability.`,
		Example: `  snpreport cognitive genome.txt --gwas EA_sumstats.tsv
  snpreport cognitive genome.txt --gwas EA_sumstats.tsv --top 5000
  snpreport cognitive genome.txt --gwas EA_sumstats.tsv --compare
  snpreport cognitive genome.txt --gwas EA_sumstats.tsv --engine duckdb --top-analysis`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gwasPath == "" {
				gwasPath = viper.GetString("gwas.path")
			}
			if gwasPath == "" {
				return fmt.Errorf("no GWAS summary statistics file: pass --gwas or set gwas.path in the config")
			}
			if compare && topAnalysis {
				return fmt.Errorf("--compare and --top-analysis are mutually exclusive")
			}
			if topN > 0 && cmd.Flags().Changed("p-value") {
				return fmt.Errorf("--top and --p-value are mutually exclusive")
			}
			if engineName == "" {
				engineName = viper.GetString("gwas.engine")
			}

			engine, err := gwas.NewEngine(engineName)
			if err != nil {
				return err
			}
			if duck, ok := engine.(*gwas.DuckDBEngine); ok {
				defer duck.Close()
			}

			logger := newLogger(cmd)
			defer logger.Sync()

			store, err := loadStore(args[0], logger)
			if err != nil {
				return err
			}

			scorer := gwas.NewScorer(store, engine, gwasPath)
			scorer.SetLogger(logger)
			f := report.NewFormatter(cmd.OutOrStdout())

			switch {
			case compare:
				results, err := scorer.Compare()
				if err != nil {
					return err
				}
				f.WriteComparison("P-VALUE THRESHOLD COMPARISON", results)
			case topAnalysis:
				results, err := scorer.TopNAnalysis()
				if err != nil {
					return err
				}
				f.WriteComparison("TOP-N SNP SELECTION ANALYSIS", results)
			default:
				sel := gwas.Selection{PThreshold: pThreshold}
				if topN > 0 {
					sel = gwas.Selection{TopN: topN}
				}
				res, err := scorer.Score(sel)
				if err != nil {
					return err
				}
				f.WriteCognitive(res)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gwasPath, "gwas", "", "GWAS summary statistics file (default from config gwas.path)")
	cmd.Flags().Float64Var(&pThreshold, "p-value", 5e-8, "p-value threshold for SNP inclusion")
	cmd.Flags().IntVar(&topN, "top", 0, "use the N most significant SNPs instead of a p-value threshold")
	cmd.Flags().BoolVar(&compare, "compare", false, "score across the standard p-value threshold ladder")
	cmd.Flags().BoolVar(&topAnalysis, "top-analysis", false, "score across the standard top-N ladder")
	cmd.Flags().StringVar(&engineName, "engine", "", "selection engine: go or duckdb")

	return cmd
}
