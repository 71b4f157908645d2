package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/robot-models/robot-models/internal/manifest"
	"github.com/robot-models/robot-models/models"
	"github.com/spf13/cobra"
)

var (
	listConstraint string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed robots",
	Long: `List every robot under the models root, with the format of its
description file and the version from its robot.yaml, if any.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listConstraint, "constraint", "", "Only show robots whose robot.yaml version satisfies a semver constraint (e.g. \">= 1.0\")")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an installed robot for display.
type listEntry struct {
	Name    string `json:"name"`
	Format  string `json:"format,omitempty"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	loc := newLocator()

	names, err := loc.ListRobots()
	if err != nil {
		return fmt.Errorf("listing robots: %w", err)
	}

	var entries []listEntry
	for _, name := range names {
		entry, m := describeEntry(loc, name)

		if listConstraint != "" {
			if m == nil {
				continue
			}
			ok, err := m.Satisfies(listConstraint)
			if err != nil {
				logger.Warn("skipping robot", "robot", name, "err", err)
				continue
			}
			if !ok {
				continue
			}
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		if listConstraint != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No robots matching --constraint=%s\n", listConstraint)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No robots installed.")
		}
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

// describeEntry resolves one robot for listing. Resolution errors are
// reported in the entry rather than aborting the listing.
func describeEntry(loc *models.Locator, name string) (listEntry, *manifest.RobotManifest) {
	entry := listEntry{Name: name}

	path, err := loc.ResolveModelFile(name)
	if err != nil {
		entry.Error = err.Error()
	} else {
		entry.Path = path
		entry.Format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	m, err := manifest.ParseDir(filepath.Join(loc.Root(), name))
	if err != nil {
		logger.Debug("unreadable robot.yaml", "robot", name, "err", err)
		return entry, nil
	}
	if m != nil {
		entry.Version = m.Version
	}
	return entry, m
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tVERSION")
	for _, e := range entries {
		format := e.Format
		if format == "" {
			format = "!"
		}
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, format, version)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
