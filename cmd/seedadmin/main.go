package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cabtour/config"
	"cabtour/database"
	adminRepo "cabtour/database/repository/admin"
	"cabtour/models"
	"cabtour/services/admin"
	"cabtour/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	adminID  string
	password string
	role     string
	reset    bool
)

var rootCmd = &cobra.Command{
	Use:   "seedadmin",
	Short: "Create or reset a back-office admin account",
	Long: `Create an admin account in the configured database.

The password is read from --password or, when that is empty, from the
SEED_ADMIN_PASSWORD environment variable. Use --reset to replace the
password and role of an existing account.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&adminID, "admin-id", "", "admin login id (required)")
	rootCmd.Flags().StringVar(&password, "password", "", "admin password, at least 8 characters")
	rootCmd.Flags().StringVar(&role, "role", models.RoleAdmin, "admin or superadmin")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "reset the password of an existing admin")
	_ = rootCmd.MarkFlagRequired("admin-id")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if password == "" {
		password = os.Getenv("SEED_ADMIN_PASSWORD")
	}
	if password == "" {
		return errors.New("no password given: set --password or SEED_ADMIN_PASSWORD")
	}

	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	defer database.Disconnect(context.Background())

	admins := adminRepo.NewMongoAdminRepo(database.DB())
	if err := admins.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure admin indexes: %w", err)
	}

	svc := &admin.DefaultAdminService{Admins: admins}
	a, err := svc.SeedAdmin(ctx, adminID, password, role, reset)
	if err != nil {
		return err
	}
	logger.Info("seedadmin finished", zap.String("adminId", a.AdminID), zap.String("role", a.Role), zap.Bool("reset", reset))
	fmt.Fprintf(cmd.OutOrStdout(), "admin %s ready (role %s)\n", a.AdminID, a.Role)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
