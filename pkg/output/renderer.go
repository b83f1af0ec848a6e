package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/specpatch/specpatch/pkg/output/styles"
	"github.com/specpatch/specpatch/pkg/types"
)

// Renderer writes run results in one concrete format. Auto resolves at
// construction time, so rendering never has to re-detect the terminal.
type Renderer struct {
	output  io.Writer
	format  Format
	encoder *json.Encoder
}

// NewRenderer creates a renderer for the given format. FormatAuto falls
// back to plain text; callers that want detection resolve it first with
// DetectFormat.
func NewRenderer(output io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
	}
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		format:  format,
		encoder: encoder,
	}
}

// RenderRun writes the outcome of a patch run. Text and terminal formats
// print one line per notable file followed by a summary; unchanged files
// stay quiet. JSON emits the full result.
func (r *Renderer) RenderRun(result *types.RunResult) error {
	if r.format == FormatJSON {
		return r.encoder.Encode(result)
	}

	for _, file := range result.Files {
		switch file.Status {
		case types.StatusChanged:
			r.printf("%s %s (%s)\n",
				r.styled("Success", "patched"),
				r.styled("Path", file.Path),
				r.styled("Count", fmt.Sprintf("%d hits", file.Hits)))
		case types.StatusMissing:
			r.printf("%s %s: file not found\n",
				r.styled("Warning", "skipped"),
				r.styled("Path", file.Path))
		case types.StatusError:
			r.printf("%s %s: %s\n",
				r.styled("Error", "error"),
				r.styled("Path", file.Path),
				file.Error)
		}
	}

	summary := fmt.Sprintf("%s: %d files, %d changed, %d hits",
		result.Command, len(result.Files), result.ChangedCount(), result.TotalHits())
	if skipped := result.SkippedCount(); skipped > 0 {
		summary += fmt.Sprintf(", %d skipped", skipped)
	}
	r.printf("%s\n", r.styled("Header", summary))

	if result.DryRun {
		r.printf("%s\n", r.styled("Subtle", "dry run, nothing was written"))
	}
	return nil
}

// RenderGenConfig reports a written config template, or prints the
// template itself when nothing was written.
func (r *Renderer) RenderGenConfig(result *types.GenConfigResult) error {
	if r.format == FormatJSON {
		return r.encoder.Encode(result)
	}
	if len(result.FilesWritten) == 0 {
		r.printf("%s", result.ConfigContent)
		return nil
	}
	for _, file := range result.FilesWritten {
		r.printf("%s %s\n", r.styled("Success", "wrote"), r.styled("Path", file))
	}
	return nil
}

// RenderError renders an error in the active format
func (r *Renderer) RenderError(err error) error {
	if r.format == FormatJSON {
		return r.encoder.Encode(map[string]string{"error": err.Error()})
	}
	r.printf("%s %v\n", r.styled("Error", "Error:"), err)
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	if r.format == FormatJSON {
		return r.encoder.Encode(map[string]string{"message": msg})
	}
	r.printf("%s\n", msg)
	return nil
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.output, format, args...)
}

// styled applies a registry style for terminal output and passes text
// through untouched otherwise.
func (r *Renderer) styled(name, text string) string {
	if r.format != FormatTerminal {
		return text
	}
	return styles.GetStyle(name).Render(text)
}
