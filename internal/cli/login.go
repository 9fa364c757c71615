package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagUsername string
	flagPassword string
)

// registerCredFlags adds the credential flags shared by every command that
// talks to a protected endpoint.
func registerCredFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagUsername, "username", os.Getenv("SCOREDECK_USERNAME"), "Admin email (or SCOREDECK_USERNAME env)")
	cmd.Flags().StringVar(&flagPassword, "password", os.Getenv("SCOREDECK_PASSWORD"), "Admin password (or SCOREDECK_PASSWORD env)")
}

// ensureLogin authenticates against the dashboard. The session cookies land
// in the client's jar, so subsequent calls in this invocation are
// authenticated. Prompts for missing credentials.
func ensureLogin() error {
	if flagUsername == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		flagUsername = strings.TrimSpace(line)
	}
	if flagPassword == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		flagPassword = strings.TrimSpace(line)
	}

	_, err := client.Post("/api/auth/login", map[string]string{
		"username": flagUsername,
		"password": flagPassword,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify admin credentials against the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLogin(); err != nil {
				return err
			}
			fmt.Println("Login successful")
			return nil
		},
	}
	registerCredFlags(cmd)
	return cmd
}
