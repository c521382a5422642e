package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"safebak/internal/config"
	"safebak/pkg/fileops"
)

func backupCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <SRC> <DEST>",
		Short: "Copy a regular file to a new .bak file",
		Long: `Copy the regular file SRC to DEST. DEST must end in .bak and must not exist.
Missing parent directories of DEST are created.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.LogRequest("backup", "src", args[0], "dest", args[1])
			defer app.logger.LogPerformance("backup", time.Now())

			return app.runner.Backup(args[0], args[1])
		},
	}
}

func restoreCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <BACKUP> <TARGET_DIR>",
		Short: "Restore a .bak file into a directory under its original name",
		Long: `Copy BACKUP to TARGET_DIR/<name without .bak>. BACKUP must be a regular
.bak file, TARGET_DIR is created if missing, and the restored file must not exist.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.LogRequest("restore", "backup", args[0], "target", args[1])
			defer app.logger.LogPerformance("restore", time.Now())

			restored, err := app.runner.Restore(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), restored)
			return nil
		},
	}
}

func deleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <FILE>",
		Short: "Delete a regular file",
		Long:  `Remove FILE. Symbolic links and directories are refused.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.logger.LogRequest("delete", "file", args[0])
			defer app.logger.LogPerformance("delete", time.Now())

			return app.runner.Delete(args[0])
		},
	}
}

func configCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the safebak configuration file",
	}
	cmd.AddCommand(configInitCommand(app))
	return cmd
}

func configInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the current settings, including any --log-* flags, to the config file
(--config, or $XDG_CONFIG_HOME/safebak/config.yaml). An existing file is never replaced.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.configPath
			if path == "" {
				path = config.ConfigPath()
			}
			app.logger.LogRequest("config init", "path", path)

			path, err := fileops.Sanitize(path)
			if err != nil {
				return err
			}
			if err := fileops.RequireAbsent(path, "config file"); err != nil {
				return err
			}
			if err := app.cfg.SaveTo(path); err != nil {
				return err
			}

			app.logger.Info("Wrote config file", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
