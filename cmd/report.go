package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/report"
)

var (
	reportXLSXPath string
	reportExportTo string
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Generate the automation-opportunity report for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		sess, err := env.Service.Session(ctx, args[0])
		if err != nil {
			return err
		}

		rpt := env.Generator.Generate(ctx, sess)

		if reportXLSXPath != "" {
			if err := report.WriteXLSX(rpt, reportXLSXPath); err != nil {
				return err
			}
			zap.L().Info("report written", zap.String("path", reportXLSXPath))
		}

		if reportExportTo != "" {
			exporter, err := buildExporter(reportExportTo)
			if err != nil {
				return err
			}
			id, err := exporter.Export(ctx, rpt)
			if err != nil {
				return err
			}
			fmt.Printf("exported to %s as %s\n", reportExportTo, id)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rpt)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportXLSXPath, "xlsx", "", "write ROI worksheet to this path")
	reportCmd.Flags().StringVar(&reportExportTo, "export", "", "push lead to destination (notion|salesforce)")
	rootCmd.AddCommand(reportCmd)
}
