package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/session"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the wealth gateway",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear local data",
	RunE:  runLogout,
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change your password",
	RunE:  runPasswd,
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted if omitted)")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, passwdCmd)
}

func runLogin(_ *cobra.Command, _ []string) error {
	email, password := flagEmail, flagPassword

	if email == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	cfg := loadConfig()
	client := newClient(cfg)

	ctx, cancel := reqContext()
	defer cancel()

	data, err := client.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return err
	}

	profile := data.Profile()
	if err := sessionStore().Save(session.Session{Profile: profile, Token: data.Token}); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("\n  Welcome back, %s!\n", profile.Name)
	switch {
	case !profile.KYCComplete:
		fmt.Println("  Identity verification pending. Run `wealth kyc` to continue.")
	case !profile.CRPComplete:
		fmt.Println("  Risk profile pending. Run `wealth risk` to continue.")
	default:
		fmt.Printf("  Risk profile: %s. Run `wealth` for your dashboard.\n", profile.RiskProfile)
	}
	fmt.Println()
	return nil
}

func runRegister(_ *cobra.Command, _ []string) error {
	var req gateway.RegisterRequest

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Full name").Value(&req.Name),
		huh.NewInput().Title("Email").Value(&req.Email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&req.Password),
		huh.NewInput().Title("Address").Value(&req.Address),
	).Title("Create account"))
	if err := form.Run(); err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)

	ctx, cancel := reqContext()
	defer cancel()

	if err := client.Register(ctx, req); err != nil {
		return err
	}

	fmt.Println("\n  Account created. Run `wealth login` to sign in.")
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	sessions := sessionStore()

	// Clear the snapshot first while we still know the customer ID.
	if sess, err := sessions.Load(); err == nil {
		if snap := openSnapshot(); snap != nil {
			_ = snap.Clear(sess.Profile.CustomerID)
			_ = snap.Close()
		}
	}

	if err := sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("  Signed out.")
	return nil
}

func runPasswd(_ *cobra.Command, _ []string) error {
	var req gateway.ChangePasswordRequest

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Current password").EchoMode(huh.EchoModePassword).Value(&req.CurrentPassword),
		huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&req.NewPassword),
		huh.NewInput().Title("Confirm new password").EchoMode(huh.EchoModePassword).Value(&req.ConfirmNewPassword),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return fmt.Errorf("new passwords do not match")
	}

	cfg := loadConfig()
	client, _, err := authClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := reqContext()
	defer cancel()

	if err := client.ChangePassword(ctx, req); err != nil {
		return err
	}
	fmt.Println("  Password changed.")
	return nil
}
