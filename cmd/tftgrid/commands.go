package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/store"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a grid.toml layout and snapshot directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			created, err := config.ScaffoldProject(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(created) == 0 {
				fmt.Fprintln(out, "All files already exist — nothing to create.")
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(out, "Created %s\n", path)
			}
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the layout to a PNG file or the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath, _ := cmd.Flags().GetString("out")
			toTerm, _ := cmd.Flags().GetBool("term")
			plain, _ := cmd.Flags().GetBool("plain")
			if outPath == "" && !toTerm {
				return fmt.Errorf("render: pass --out <file.png> or --term")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if toTerm {
				text, sc, err := renderTerm(cfg, plain)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				printWarnings(cmd.ErrOrStderr(), sc.Diagnostics())
			}
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
				sc, err := renderPNG(cfg, f)
				if closeErr := f.Close(); err == nil && closeErr != nil {
					err = fmt.Errorf("render: close %s: %w", outPath, closeErr)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", outPath, cfg.Display.Width, cfg.Display.Height)
				if !toTerm {
					printWarnings(cmd.ErrOrStderr(), sc.Diagnostics())
				}
			}
			return nil
		},
	}
	cmd.Flags().String("out", "", "write a PNG of the display to this file")
	cmd.Flags().Bool("term", false, "draw the layout in the terminal")
	cmd.Flags().Bool("plain", false, "with --term, print without colors")
	return cmd
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print resolved tracks, cells, and layout warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sc, err := buildScene(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatInspect(sc))

			if warnings := sc.Diagnostics().Warnings(); strict && len(warnings) > 0 {
				return fmt.Errorf("inspect: %d layout warning(s)", len(warnings))
			}
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "exit non-zero when the layout has warnings")
	return cmd
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive terminal preview that reloads on save",
		RunE: func(cmd *cobra.Command, args []string) error {
			noWatch, _ := cmd.Flags().GetBool("no-watch")
			path, _ := cmd.Flags().GetString("config")
			return runPreview(path, !noWatch)
		},
	}
	cmd.Flags().Bool("no-watch", false, "do not reload when grid.toml changes")
	return cmd
}

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, list, and diff resolved layout geometry",
	}
	cmd.AddCommand(snapshotSaveCmd(), snapshotListCmd(), snapshotDiffCmd())
	return cmd
}

func snapshotSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store the current resolved geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sc, err := buildScene(cfg)
			if err != nil {
				return err
			}
			return withStore(cfg, func(st store.Store) error {
				saved, err := st.Save(sc.Snapshot(name))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot %d (%s, %d cells)\n", saved.ID, saved.Name, len(saved.Cells))
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "snapshot name (default: the layout name)")
	return cmd
}

func snapshotListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return withStore(cfg, func(st store.Store) error {
				summaries, err := st.List()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatSnapshotList(summaries))
				return nil
			})
		},
	}
}

func snapshotDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [id]",
		Short: "Compare the current layout with a saved snapshot",
		Long: "Compare the current resolved geometry with snapshot <id>, or with the\n" +
			"latest snapshot of the same name when no id is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sc, err := buildScene(cfg)
			if err != nil {
				return err
			}
			current := sc.Snapshot("")

			return withStore(cfg, func(st store.Store) error {
				var base store.Snapshot
				if len(args) == 1 {
					id, err := strconv.ParseInt(args[0], 10, 64)
					if err != nil {
						return fmt.Errorf("snapshot diff: invalid id %q", args[0])
					}
					base, err = st.Get(id)
					if err != nil {
						return err
					}
				} else {
					base, err = st.Latest(current.Name)
					if err != nil {
						return err
					}
				}
				fmt.Fprint(cmd.OutOrStdout(), formatChanges(base, store.Diff(base, current)))
				return nil
			})
		},
	}
	return cmd
}

// withStore opens the layout's snapshot store for the duration of fn.
func withStore(cfg *config.Config, fn func(store.Store) error) error {
	st, err := store.Open(cfg.Snapshots.Backend, cfg.SnapshotDir())
	if err != nil {
		return err
	}
	err = fn(st)
	if closeErr := st.Close(); err == nil {
		err = closeErr
	}
	return err
}
