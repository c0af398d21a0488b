package rendering

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/jonathan/gpa-calculator/internal/types"
)

// DefaultTemplate renders the result the way the form's result dialog shows it.
const DefaultTemplate = `{{heading "GPA Result"}}
Your GPA is {{.Result.Display}}.
{{remark .Result.Tier .Result.Remark}}
{{muted "Media:"}} {{.Result.Media}}
{{- if .Result.Celebrate}}
{{celebrate "*** Congratulations! ***"}}
{{- end}}
`

// Options controls text rendering.
type Options struct {
	NoColor bool
	// Template overrides DefaultTemplate when non-nil
	Template *template.Template
	// HideBreakdown skips the per-subject table
	HideBreakdown bool
}

// TemplateData is the data passed to result templates
type TemplateData struct {
	Result    *types.Result
	Breakdown []gpa.Breakdown
}

// ParseTemplate reads and parses a result template file.
func ParseTemplate(path string) (*template.Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	return parse(string(content))
}

func parse(content string) (*template.Template, error) {
	// Funcs are rebound per render; these placeholders only satisfy Parse.
	tmpl, err := template.New("result").Funcs(funcMap(newPalette(true))).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func funcMap(p *palette) template.FuncMap {
	return template.FuncMap{
		"heading":   p.heading.Sprint,
		"muted":     p.muted.Sprint,
		"celebrate": p.celebrate.Sprint,
		"remark": func(tier types.RemarkTier, text string) string {
			return p.forTier(tier).Sprint(text)
		},
	}
}

// Text writes a human-readable result followed by the per-subject breakdown.
func Text(w io.Writer, result *types.Result, breakdown []gpa.Breakdown, opts Options) error {
	if result == nil {
		return &RenderError{Message: "no result to render"}
	}

	tmpl := opts.Template
	if tmpl == nil {
		var err error
		if tmpl, err = parse(DefaultTemplate); err != nil {
			return err
		}
	}

	// funcs are bound per call so NoColor applies to caller-supplied templates too
	tmpl, err := tmpl.Clone()
	if err != nil {
		return &TemplateError{Message: "failed to clone template", Cause: err}
	}
	tmpl.Funcs(funcMap(newPalette(opts.NoColor)))

	data := TemplateData{Result: result, Breakdown: breakdown}
	if err := tmpl.Execute(w, data); err != nil {
		return &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	if opts.HideBreakdown || len(breakdown) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return &RenderError{Message: "failed to write output", Cause: err}
	}
	Breakdown(w, breakdown, result)
	return nil
}

// JSON writes the result as indented JSON.
func JSON(w io.Writer, result *types.Result) error {
	if result == nil {
		return &RenderError{Message: "no result to render"}
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return &RenderError{Message: "failed to marshal result", Cause: err}
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return &RenderError{Message: "failed to write output", Cause: err}
	}
	return nil
}
