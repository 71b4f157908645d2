package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/robot-models/robot-models/internal/manifest"
	"github.com/spf13/cobra"
)

var describeJSON bool

var describeCmd = &cobra.Command{
	Use:   "describe <robot>",
	Short: "Show a robot's description file and metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(describeCmd)
}

// robotDetail is the describe output.
type robotDetail struct {
	Name     string                  `json:"name"`
	Path     string                  `json:"path"`
	Format   string                  `json:"format"`
	Meshes   bool                    `json:"mesh_model"`
	Manifest *manifest.RobotManifest `json:"manifest,omitempty"`
}

func runDescribe(cmd *cobra.Command, args []string) error {
	loc := newLocator()
	name := args[0]

	path, err := loc.ResolveModelFile(name)
	if err != nil {
		return err
	}

	detail := robotDetail{
		Name:   name,
		Path:   path,
		Format: strings.TrimPrefix(filepath.Ext(path), "."),
	}
	for _, m := range loc.MeshModels() {
		if m == name {
			detail.Meshes = true
		}
	}

	m, err := manifest.ParseDir(filepath.Join(loc.Root(), name))
	if err != nil {
		return err
	}
	detail.Manifest = m

	if describeJSON {
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", detail.Name)
	fmt.Fprintf(w, "Path:\t%s\n", detail.Path)
	fmt.Fprintf(w, "Format:\t%s\n", detail.Format)
	fmt.Fprintf(w, "Mesh model:\t%t\n", detail.Meshes)
	if m != nil {
		fmt.Fprintf(w, "Version:\t%s\n", m.Version)
		if m.Description != "" {
			fmt.Fprintf(w, "Description:\t%s\n", m.Description)
		}
		if len(m.Tags) > 0 {
			fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(m.Tags, ", "))
		}
		if m.License != "" {
			fmt.Fprintf(w, "License:\t%s\n", m.License)
		}
	}
	return w.Flush()
}
