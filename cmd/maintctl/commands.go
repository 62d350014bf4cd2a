package main

import (
	"errors"
	"fmt"

	"maintenance-hub-backend/internal/database"
	"maintenance-hub-backend/internal/seed"

	"github.com/spf13/cobra"
)

func newMigrateCmd(open dbOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func newSeedCmd(open dbOpener) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load companies, users, machinery, parts and tutorials from a YAML file",
		Long: `Load reference data from a YAML file with the sections
companies, users, machinery, parts and tutorials.

Rows that already exist are skipped, so the command can be run repeatedly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.LoadFile(file)
			if err != nil {
				return err
			}
			db, err := open()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			result, err := seed.Apply(db, data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range []struct {
				name  string
				count seed.Count
			}{
				{"Companies", result.Companies},
				{"Users", result.Users},
				{"Machinery", result.Machinery},
				{"Parts", result.Parts},
				{"Tutorials", result.Tutorials},
			} {
				fmt.Fprintf(out, "%s: %d created, %d total\n", line.name, line.count.Created, line.count.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "Seed file to load")
	return cmd
}

func newCreateSuperAdminCmd(open dbOpener) *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "create-super-admin",
		Short: "Create a super admin or promote an existing user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" || name == "" {
				return errors.New("--email, --password and --name are required")
			}
			db, err := open()
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			profile, created, err := seed.CreateSuperAdmin(db, email, password, name)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created super admin %s (%s)\n", profile.Email, profile.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Promoted %s (%s) to super admin\n", profile.Email, profile.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Initial password, at least 8 characters")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	return cmd
}
