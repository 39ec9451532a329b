package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rafal.dev/behold/internal/misc"
	beholdctx "rafal.dev/behold/pkg/context"
	"rafal.dev/behold/pkg/preset"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type App struct {
	ctx context.Context

	ContextFile string
	Format      string
}

func NewApp(ctx context.Context) *App {
	return &App{ctx: ctx}
}

func (app *App) Context() context.Context {
	return app.ctx
}

func (app *App) Register(f *pflag.FlagSet) {
	f.StringVarP(&app.ContextFile, "context", "c", "", "File with context switches to preload")
	f.StringVarP(&app.Format, "format", "f", "yaml", "Format encoding of the output")
}

func (app *App) Init(next CobraFunc) CobraFunc {
	return func(cmd *cobra.Command, args []string) error {
		if !cmd.Flag("context").Changed {
			app.ContextFile = misc.Nonzero(app.ContextFile, os.Getenv("BEHOLD_CONTEXT"))
		}

		if app.ContextFile != "" {
			m, err := preset.File(app.ContextFile, presetFormat(app.ContextFile, app.Format))
			if err != nil {
				return fmt.Errorf("context preload error: %w", err)
			}

			beholdctx.Apply(m)
		}

		return next(cmd, args)
	}
}

// presetFormat picks the encoding of a switch file from its extension,
// so --format only governs the output. Extension-less paths, stdin
// included, fall back to the format flag.
func presetFormat(path, format string) string {
	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext {
	case "json", "yaml", "yml":
		return ext
	default:
		return format
	}
}

func (app *App) Render(w io.Writer, v any) error {
	switch strings.ToLower(app.Format) {
	case "yaml":
		p, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}

		fmt.Fprintf(w, "%s", p)
	case "json":
		p, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}

		fmt.Fprintf(w, "%s\n", p)
	default:
		return fmt.Errorf("unsupported format: %q", app.Format)
	}

	return nil
}
