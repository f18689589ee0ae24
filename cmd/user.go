package main

import (
	"fmt"

	"github.com/Abraxas-365/recruitboard/pkg/iam/user"
	"github.com/spf13/cobra"
)

var (
	userEmail    string
	userName     string
	userPassword string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage operator accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an operator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		container := NewContainer(cfg)
		defer container.Close()

		u, err := container.UserService.CreateUser(cmd.Context(), user.CreateUserRequest{
			Email:       userEmail,
			DisplayName: userName,
			Password:    userPassword,
			Role:        userRole,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) with scopes %v\n", u.Email, u.ID, u.Scopes)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&userEmail, "email", "", "login email")
	f.StringVar(&userName, "name", "", "display name")
	f.StringVar(&userPassword, "password", "", "password, at least 8 characters")
	f.StringVar(&userRole, "role", "viewer", "admin, recruiter or viewer")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
