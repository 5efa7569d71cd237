package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/gateway"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Complete the risk-profiling questionnaire",
	RunE:  runRisk,
}

func init() {
	rootCmd.AddCommand(riskCmd)
}

func runRisk(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		return err
	}

	if sess.Profile.CRPComplete {
		fmt.Printf("  Risk profile already assigned: %s\n", sess.Profile.RiskProfile)
		fmt.Println("  Re-running the questionnaire will replace it.")
	}

	ctx, cancel := reqContext()
	defer cancel()

	questions, err := client.CRPQuestions(ctx)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("gateway returned no questionnaire items")
	}

	// One select group per question, answered in sequence.
	selections := make([]string, len(questions))
	groups := make([]*huh.Group, len(questions))
	for i, q := range questions {
		opts := make([]huh.Option[string], len(q.Answers))
		for j, a := range q.Answers {
			opts[j] = huh.NewOption(a.Text, a.ID)
		}
		groups[i] = huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%d/%d  %s", i+1, len(questions), q.Text)).
				Options(opts...).
				Value(&selections[i]),
		)
	}
	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	answers := make([]gateway.CRPAnswer, len(questions))
	for i, q := range questions {
		answers[i] = gateway.CRPAnswer{QuestionID: q.ID, AnswerID: selections[i]}
	}

	// Validate first so a scoring problem surfaces before anything persists.
	ctx2, cancel2 := reqContext()
	defer cancel2()
	if _, err := client.ValidateCRPAnswers(ctx2, answers); err != nil {
		return fmt.Errorf("validating answers: %w", err)
	}

	ctx3, cancel3 := reqContext()
	defer cancel3()
	result, err := client.SaveCRPAnswers(ctx3, answers)
	if err != nil {
		return err
	}

	sess.Profile.CRPComplete = true
	if risk, ok := result.Risk(); ok {
		sess.Profile.RiskProfile = risk
	} else if !flagQuiet {
		fmt.Fprintln(os.Stderr, "  Gateway returned an unrecognized risk tier name.")
	}
	_ = sessionStore().UpdateProfile(sess.Profile)

	fmt.Printf("\n  Score: %d\n", result.TotalScore)
	fmt.Printf("  Investor profile: %s\n", sess.Profile.RiskProfile)
	if result.Insight != "" {
		fmt.Printf("\n  %s\n", result.Insight)
	}
	fmt.Println("\n  Run `wealth products` to see funds matched to your tier.")
	return nil
}
