// Package export drives the load-normalize-render-compose pipeline for
// one menu document or a glob of them.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"

	"github.com/clientfirst-digital/menuengine/internal/menu"
	"github.com/clientfirst-digital/menuengine/internal/relaxed"
	"github.com/clientfirst-digital/menuengine/internal/state"
	"github.com/clientfirst-digital/menuengine/internal/template"
	"github.com/clientfirst-digital/menuengine/internal/theme"
	"github.com/clientfirst-digital/menuengine/internal/viewer"
)

// Runner holds the pieces of the export pipeline.
type Runner struct {
	Templates *template.Registry
	Themes    *theme.Registry
	Applier   *theme.Applier
	Exporter  *viewer.Exporter

	// DefaultTemplate and DefaultTheme seed menus that do not select
	// their own.
	DefaultTemplate string
	DefaultTheme    string

	// Features gates viewer CTAs; nil leaves them ungated.
	Features []string

	// About is optional pre-rendered HTML appended to each viewer.
	About string
}

// File loads one menu document and composes its viewer artifact. The
// returned name is the suggested output file name, derived from the menu
// name's slug. The normalization report is returned for diagnostics.
func (r *Runner) File(ctx context.Context, path string) (artifact []byte, name string, report menu.Report, err error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, "", report, fmt.Errorf("reading %s: %w", path, err)
	}
	raw, err := relaxed.Parse(string(text))
	if err != nil {
		return nil, "", report, fmt.Errorf("parsing %s: %w", path, err)
	}

	app := state.New(r.Templates, r.Themes, r.DefaultTemplate, r.DefaultTheme)
	m, report := app.SetMenu(raw)

	r.Applier.Apply(ctx, app.Theme())

	artifact, err = r.Exporter.Export(app.Template(), m, r.Applier.Snapshot(), viewer.Options{
		About:    r.About,
		Features: r.Features,
	})
	if err != nil {
		return nil, "", report, fmt.Errorf("exporting %s: %w", path, err)
	}

	name = template.Slugify(m.Name)
	if name == "" {
		name = "viewer"
	}
	return artifact, name + ".html", report, nil
}

// Result describes one batch entry's outcome.
type Result struct {
	Source string
	Output string
	Err    error
}

// Batch exports a viewer for every menu document matching pattern into
// outDir. It shows a progress bar and keeps going past per-file failures;
// the error return covers only the glob and output directory themselves.
func (r *Runner) Batch(ctx context.Context, pattern, outDir string) ([]Result, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no menu documents match %q", pattern)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	bar := progressbar.NewOptions(len(matches),
		progressbar.OptionSetDescription("Exporting viewers"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		bar.Describe(filepath.Base(match))

		artifact, name, _, err := r.File(ctx, match)
		res := Result{Source: match}
		if err == nil {
			res.Output = filepath.Join(outDir, name)
			err = os.WriteFile(res.Output, artifact, 0o644)
		}
		res.Err = err
		results = append(results, res)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return results, nil
}
