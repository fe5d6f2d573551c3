package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/questionbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Validate and summarize the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}
		if err := questionbank.Validate(bank); err != nil {
			return err
		}

		fmt.Printf("sections: %d  questions: %d  required: %d\n",
			len(bank.Sections), bank.TotalQuestions, bank.RequiredQuestions)
		for _, sec := range bank.Sections {
			fmt.Printf("  %-24s weight %2d  questions %2d  required %2d  minimum %d\n",
				sec.ID, sec.Weight, len(sec.Questions), sec.RequiredCount(),
				sec.CompletionCriteria.MinimumQuestions)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bankCmd)
}
