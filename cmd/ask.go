package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/report"
)

var askShowReport bool

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Run the questionnaire interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		scanner := bufio.NewScanner(os.Stdin)
		var sessionID, answer string

		for {
			turn, err := env.Service.NextQuestion(ctx, sessionID, answer)
			if err != nil {
				return err
			}
			sessionID = turn.SessionID

			if turn.SectionTransition != "" {
				fmt.Printf("\n── %s\n", turn.SectionTransition)
			}
			if turn.IsComplete {
				fmt.Printf("\nAssessment complete (%d questions, %.0f%%).\n",
					turn.Progress.QuestionsAnswered, turn.Progress.OverallProgress)
				break
			}

			fmt.Printf("\n[%3.0f%%] %s\n", turn.Progress.OverallProgress, turn.QuestionText)
			if turn.Question != nil && len(turn.Question.QuickResponses) > 0 {
				fmt.Printf("       (%s)\n", strings.Join(turn.Question.QuickResponses, " / "))
			}
			fmt.Print("> ")

			if !scanner.Scan() {
				fmt.Println()
				break
			}
			answer = strings.TrimSpace(scanner.Text())
			if answer == "" {
				answer = "skip"
			}
		}

		if askShowReport && sessionID != "" {
			sess, err := env.Service.Session(ctx, sessionID)
			if err != nil {
				return err
			}
			rpt := env.Generator.Generate(ctx, sess)
			fmt.Printf("\nAutomation score: %d/100\n", rpt.AutomationScore)
			fmt.Printf("Monthly savings potential: %s\n", report.Currency(rpt.ROI.TotalMonthlySavings))
			fmt.Printf("Payback: %.1f months\n", rpt.ROI.PaybackMonths)
			for _, rec := range rpt.Recommendations {
				fmt.Printf("  - %s\n", rec)
			}
		}

		return scanner.Err()
	},
}

func init() {
	askCmd.Flags().BoolVar(&askShowReport, "report", true, "print the report summary when finished")
	rootCmd.AddCommand(askCmd)
}
