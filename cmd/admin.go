package cmd

import (
	"fmt"

	"mc-panel/feature/admins"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var newPassword string

// adminCmd represents the admin command
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage panel logins",
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdminStore(cmd, func(store *admins.Store, _ *zap.Logger) error {
			names, err := store.List(commandContext(cmd))
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

var adminCreateCmd = &cobra.Command{
	Use:   "create <username> <password>",
	Short: "Create an admin",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdminStore(cmd, func(store *admins.Store, logg *zap.Logger) error {
			if err := store.Create(commandContext(cmd), args[0], args[1]); err != nil {
				return err
			}
			logg.Info("Admin created", zap.String("admin", args[0]))
			return nil
		})
	},
}

var adminUpdateCmd = &cobra.Command{
	Use:   "update <username> <new-username>",
	Short: "Rename an admin, optionally changing the password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdminStore(cmd, func(store *admins.Store, logg *zap.Logger) error {
			if err := store.Update(commandContext(cmd), args[0], args[1], newPassword); err != nil {
				return err
			}
			logg.Info("Admin updated",
				zap.String("admin", args[0]),
				zap.String("username", args[1]),
				zap.Bool("password_changed", newPassword != ""),
			)
			return nil
		})
	},
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete an admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAdminStore(cmd, func(store *admins.Store, logg *zap.Logger) error {
			if err := store.Delete(commandContext(cmd), args[0]); err != nil {
				return err
			}
			logg.Info("Admin deleted", zap.String("admin", args[0]))
			return nil
		})
	},
}

func withAdminStore(cmd *cobra.Command, fn func(*admins.Store, *zap.Logger) error) error {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := openCredentials(commandContext(cmd), cfg, logg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(admins.NewStore(db), logg)
}

func init() {
	adminUpdateCmd.Flags().StringVar(&newPassword, "password", "", "new password, empty keeps the current one")
	adminCmd.AddCommand(adminListCmd, adminCreateCmd, adminUpdateCmd, adminDeleteCmd)
	RootCmd.AddCommand(adminCmd)
}
