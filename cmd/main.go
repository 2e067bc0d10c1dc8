package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"clinic-pharmacy-api/cmd/bootstrap"
	"clinic-pharmacy-api/config"
	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/infrastructure/cache"
	"clinic-pharmacy-api/internal/infrastructure/database"
	"clinic-pharmacy-api/internal/service"
	"clinic-pharmacy-api/pkg/jwt"

	"github.com/spf13/cobra"
)

var roles = []string{entity.RoleAdmin, entity.RolePharmacist, entity.RoleDoctor, entity.RoleReceptionist}

func main() {
	rootCmd := &cobra.Command{
		Use:          "clinic",
		Short:        "Clinic and pharmacy management API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations (postgres)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			version, err := database.RunMigrations(cfg.DB)
			if err != nil {
				return err
			}
			fmt.Printf("Schema at version %d.\n", version)
			return nil
		},
	})

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revert applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			version, err := database.RollbackMigrations(cfg.DB, steps)
			if err != nil {
				return err
			}
			fmt.Printf("Schema at version %d.\n", version)
			return nil
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to revert")
	cmd.AddCommand(downCmd)

	return cmd
}

// tokenCmd mints and revokes development access tokens. In production the
// external auth service issues them.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")

			if !slices.Contains(roles, role) {
				return fmt.Errorf("unknown role %q, use one of %v", role, roles)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("JWT_SECRET is required")
			}

			jwtService := jwt.NewJWTService(cfg.JWT)
			token, tokenID, err := jwtService.GenerateAccessToken(subject, role)
			if err != nil {
				return err
			}

			fmt.Printf("Token ID:   %s\n", tokenID)
			fmt.Printf("Expires in: %s\n", jwtService.GetAccessExpiry())
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().String("subject", "dev", "Token subject")
	cmd.Flags().String("role", entity.RoleAdmin, "Role claim")

	revokeCmd := &cobra.Command{
		Use:   "revoke <token-id>",
		Short: "Revoke a token until it expires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if !cfg.Redis.Enabled {
				return fmt.Errorf("token revocation requires REDIS_ENABLED=true")
			}

			log := bootstrap.NewLogger(cfg.Log)
			client, err := cache.NewRedisClient(cfg.Redis, log)
			if err != nil {
				return err
			}
			defer client.Close()

			cacheService := service.NewRedisCacheService(client, log, cfg.Dashboard.CacheTTL)
			if err := cacheService.RevokeToken(context.Background(), args[0], cfg.JWT.AccessExpiry); err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}

			fmt.Printf("Token %s revoked.\n", args[0])
			return nil
		},
	}
	cmd.AddCommand(revokeCmd)

	return cmd
}
