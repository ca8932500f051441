// Command sgcctl runs maintenance tasks against the SGC database.
package main

import (
	"context"
	"fmt"
	"os"

	"sgc/internal/app"
	"sgc/internal/config"
	dom "sgc/internal/domain"
	"sgc/internal/logger"
	"sgc/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sgcctl",
		Short:        "SGC maintenance commands",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newUsuarioCmd(), newHashCmd())
	return root
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	logger.Setup(cfg.App.Env, cfg.App.LogLevel)
	return cfg, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := app.RunMigrations(cfg.PG.DSN, cfg.PG.MigrationsDir); err != nil {
				return err
			}
			log.Info().Str("dir", cfg.PG.MigrationsDir).Msg("migrations applied")
			return nil
		},
	}
}

func newUsuarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuario",
		Short: "Manage usuarios",
	}

	var u dom.Usuario
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a usuario (e.g. the first admin able to log in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := app.NewPostgres(cfg.PG)
			if err != nil {
				return err
			}
			defer db.Close()
			usuarios, _, err := app.NewServices(cfg, db)
			if err != nil {
				return err
			}
			if err := usuarios.Create(context.Background(), u); err != nil {
				return fmt.Errorf("create usuario %q: %w", u.Username, err)
			}
			log.Info().Str("username", u.Username).Msg("usuario created")
			return nil
		},
	}
	create.Flags().StringVar(&u.Username, "username", "", "username (required)")
	create.Flags().StringVar(&u.Password, "password", "", "password (required)")
	create.Flags().StringVar(&u.Nombre, "nombre", "", "display name")
	create.Flags().StringVar(&u.Email, "email", "", "email")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <password>",
		Short: "Print the bcrypt hash of a password, for PASSWORD_MODE=bcrypt seeds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := service.BcryptVerifier{}.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}
