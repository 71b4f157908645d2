package doctor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/robot-models/robot-models/internal/manifest"
	"github.com/robot-models/robot-models/models"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Status tags printed in front of each check line.
var (
	tagOK   = okStyle.Render("[ OK ]")
	tagMiss = warnStyle.Render("[MISS]")
	tagWarn = warnStyle.Render("[WARN]")
	tagFail = failStyle.Render("[FAIL]")
)

// Options tunes which checks run.
type Options struct {
	// ConverterErr is the result of looking up the converter; nil means one is available.
	ConverterErr error
	// ConverterName describes the converter that was found.
	ConverterName string
}

// Report counts check outcomes.
type Report struct {
	Robots   int
	Warnings int
	Failures int
}

// OK reports whether no check failed.
func (r Report) OK() bool { return r.Failures == 0 }

// Check runs every installation check and writes one line per finding to w.
func Check(w io.Writer, loc *models.Locator, opts Options) Report {
	var r Report

	fmt.Fprintln(w, "Installation check:")

	root := filepath.Clean(loc.Root())
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		fmt.Fprintf(w, "  %s %s does not exist\n", tagMiss, root)
		r.Failures++
		return r
	}
	fmt.Fprintf(w, "  %s %s exists\n", tagOK, root)

	checkMeshModels(w, loc, &r)
	checkRobots(w, loc, &r)
	checkConverter(w, opts, &r)

	return r
}

func checkMeshModels(w io.Writer, loc *models.Locator, r *Report) {
	for _, name := range loc.MeshModels() {
		dir := filepath.Join(loc.Root(), name)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  %s mesh model %s: %s does not exist\n", tagMiss, name, dir)
			r.Failures++
			continue
		}
		fmt.Fprintf(w, "  %s mesh model %s\n", tagOK, name)
	}
}

func checkRobots(w io.Writer, loc *models.Locator, r *Report) {
	names, err := loc.ListRobots()
	if err != nil {
		fmt.Fprintf(w, "  %s listing robots: %v\n", tagFail, err)
		r.Failures++
		return
	}
	r.Robots = len(names)

	for _, name := range names {
		path, err := loc.ResolveModelFile(name)
		if err != nil {
			var merr *models.Error
			if errors.As(err, &merr) && errors.Is(err, models.ErrAmbiguousModel) {
				fmt.Fprintf(w, "  %s %s: %d description files (want exactly 1)\n", tagFail, name, len(merr.Matches))
			} else {
				fmt.Fprintf(w, "  %s %s: %v\n", tagFail, name, err)
			}
			r.Failures++
			continue
		}

		rel, relErr := filepath.Rel(loc.Root(), path)
		if relErr != nil {
			rel = path
		}
		fmt.Fprintf(w, "  %s %s -> %s\n", tagOK, name, rel)

		checkManifest(w, filepath.Join(loc.Root(), name), path, r)
	}
}

// checkManifest validates an optional robot.yaml and cross-checks it against
// the directory name and the stored description file.
func checkManifest(w io.Writer, dir, stored string, r *Report) {
	path := filepath.Join(dir, manifest.FileName)
	if _, err := os.Stat(path); err != nil {
		return
	}

	result, err := manifest.CheckInstalled(dir, stored)
	if err != nil {
		fmt.Fprintf(w, "  %s %s: %v\n", tagFail, path, err)
		r.Failures++
		return
	}
	if !result.Valid {
		fmt.Fprintf(w, "  %s %s: %s\n", tagFail, path, result.Summary())
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "         %s\n", issue)
		}
		r.Failures++
		return
	}
	for _, mismatch := range result.Mismatches {
		fmt.Fprintf(w, "  %s %s: %s\n", tagWarn, path, mismatch)
		r.Warnings++
	}
}

func checkConverter(w io.Writer, opts Options, r *Report) {
	if opts.ConverterErr != nil {
		fmt.Fprintf(w, "  %s converter: %v\n", tagWarn, opts.ConverterErr)
		fmt.Fprintln(w, "         URDF to SDF requests will fail until gz or ign is on PATH")
		r.Warnings++
		return
	}
	fmt.Fprintf(w, "  %s converter: %s\n", tagOK, opts.ConverterName)
}
