package decomposer

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/aouyang1/go-decomposer/timedataset"
	"github.com/yuin/goldmark"
)

var ErrNoResults = errors.New("no decomposition results to render")

//go:embed content
var content embed.FS

var pageTmpl = template.Must(
	template.New("page.html").
		Funcs(template.FuncMap{
			"inc":     func(i int) int { return i + 1 },
			"fmtTime": func(t time.Time) string { return t.Format("January 2006") },
		}).
		ParseFS(content, "content/page.html"),
)

type section struct {
	Title   string
	Element template.HTML
	Script  template.HTML
	Text    template.HTML
}

type page struct {
	Title      string
	AssetsHost string
	Intro      template.HTML
	Sections   []section
	Model      template.HTML
	Summary    *Summary
}

// figure is one chart of the dashboard along with the markdown file explaining it
type figure struct {
	title string
	name  string
	text  string
	y     []timedataset.Value
}

// RenderPage writes the dashboard for res to w. The observed, trend, seasonal and irregular
// charts appear in that order, each followed by its explanation, then the additive model note.
func RenderPage(w io.Writer, res *Results, opt *PlotOptions) error {
	if res == nil || res.Decomposition == nil {
		return ErrNoResults
	}
	if opt == nil {
		opt = NewDefaultPlotOptions()
	}
	dec := res.Decomposition

	figures := []figure{
		{title: "Raw Time Series", name: "Observed Series", text: "observed.md", y: timedataset.Values(dec.Observed)},
		{title: "Trend Component", name: "Trend", text: "trend.md", y: dec.Trend},
		{title: "Seasonal Component", name: "Seasonal", text: "seasonal.md", y: dec.Seasonal},
		{title: "Irregular Component", name: "Irregular", text: "irregular.md", y: dec.Irregular},
	}

	p := page{
		Title:      opt.PageTitle,
		AssetsHost: opt.AssetsHost,
		Sections:   make([]section, 0, len(figures)),
		Summary:    res.Summary,
	}

	var err error
	if p.Intro, err = markdown("intro.md"); err != nil {
		return err
	}
	if p.Model, err = markdown("model.md"); err != nil {
		return err
	}

	for _, fig := range figures {
		line, err := LineSeries(fig.name, fig.name, dec.T, fig.y, opt)
		if err != nil {
			return fmt.Errorf("unable to plot %s, %w", fig.name, err)
		}
		text, err := markdown(fig.text)
		if err != nil {
			return err
		}
		snippet := line.RenderSnippet()
		p.Sections = append(p.Sections, section{
			Title:   fig.title,
			Element: template.HTML(snippet.Element),
			Script:  template.HTML(snippet.Script),
			Text:    text,
		})
	}

	return pageTmpl.Execute(w, p)
}

func markdown(name string) (template.HTML, error) {
	src, err := content.ReadFile("content/" + name)
	if err != nil {
		return "", fmt.Errorf("unable to read %s, %w", name, err)
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("unable to convert %s, %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
