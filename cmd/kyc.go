package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/gateway"
)

var kycCmd = &cobra.Command{
	Use:   "kyc",
	Short: "Verify your identity",
	RunE:  runKYC,
}

func init() {
	rootCmd.AddCommand(kycCmd)
}

func runKYC(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	client, sess, err := authClient(cfg)
	if err != nil {
		return err
	}

	if sess.Profile.KYCComplete {
		fmt.Println("  Identity already verified.")
		return nil
	}

	var req gateway.KYCRequest
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("National ID number (NIK)").
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) != 16 {
					return fmt.Errorf("NIK must be 16 digits")
				}
				return nil
			}).
			Value(&req.NIK),
		huh.NewInput().Title("Place of birth").Value(&req.POB),
		huh.NewInput().
			Title("Date of birth (YYYY-MM-DD)").
			Validate(func(s string) error {
				if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
					return fmt.Errorf("use YYYY-MM-DD")
				}
				return nil
			}).
			Value(&req.DOB),
	).Title("Verify your identity"))
	if err := form.Run(); err != nil {
		return err
	}
	req.NIK = strings.TrimSpace(req.NIK)
	req.POB = strings.TrimSpace(req.POB)
	req.DOB = strings.TrimSpace(req.DOB)

	ctx, cancel := reqContext()
	defer cancel()

	data, err := client.SubmitKYC(ctx, req)
	if err != nil {
		return err
	}

	sess.Profile.KYCComplete = true
	_ = sessionStore().UpdateProfile(sess.Profile)

	fmt.Printf("\n  Verification status: %s\n", data.KYCStatus)
	if data.Insight != "" {
		fmt.Printf("  %s\n", data.Insight)
	}
	fmt.Println("\n  Next: run `wealth risk` to complete your investor profile.")
	return nil
}
