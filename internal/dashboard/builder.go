package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"breathewatch/internal/aqi"
	"breathewatch/internal/charts"
	"breathewatch/internal/config"
	"breathewatch/internal/logger"
	"breathewatch/internal/models"
)

// Builder assembles dashboard views and renders them to HTML
type Builder struct {
	tmpl     *template.Template
	goldmark goldmark.Markdown
	charts   *charts.Generator
	log      *logger.Logger
}

// NewBuilder creates a dashboard builder
func NewBuilder(chartGen *charts.Generator) (*Builder, error) {
	funcs := template.FuncMap{
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
	}

	tmpl, err := template.New("dashboard").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	return &Builder{
		tmpl:     tmpl,
		goldmark: md,
		charts:   chartGen,
		log:      logger.WithComponent("dashboard"),
	}, nil
}

// BuildView shapes fetched data into the view-model record. A nil aq
// with a non-empty errMsg produces an error view; chart fragments that
// fail degrade to empty sections rather than failing the page.
func (b *Builder) BuildView(query string, aq *models.AirQuality, advisories []models.Advisory, favoriteNames []string, errMsg string) *View {
	view := &View{
		Query:       query,
		Advisories:  advisories,
		Favorites:   favoriteNames,
		Err:         errMsg,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Version:     config.GetVersion(),
	}

	if aq == nil {
		return view
	}

	view.Place = aq.Place
	view.Index = aq.Index
	view.Assessment = aqi.Classify(aq.Index)
	view.Cigarettes = aqi.CigaretteEquivalent(aq.Index)
	view.Forecast = aq.Forecast

	for _, name := range favoriteNames {
		if name == aq.Place {
			view.IsFavorite = true
			break
		}
	}

	for _, p := range models.Pollutants {
		value := aq.Readings[p]
		view.Readings = append(view.Readings, PollutantRow{
			Key:      p,
			Name:     p.DisplayName(),
			Value:    value,
			Reported: value != nil,
		})
	}

	if gauge, err := b.charts.AQIGaugeSnippet(aq); err == nil {
		view.GaugeHTML = template.HTML(gauge.HTML)
	} else {
		b.log.Warn("Failed to build gauge snippet", map[string]interface{}{"place": aq.Place})
	}

	if bars, err := b.charts.PollutantBarsSnippet(aq); err == nil {
		view.BarsHTML = template.HTML(bars.HTML)
	}

	if len(aq.Forecast) > 0 {
		if strip, err := b.charts.ForecastStripSnippet(aq); err == nil {
			view.ForecastHTML = template.HTML(strip)
		} else {
			b.log.Warn("Failed to build forecast strip", map[string]interface{}{"place": aq.Place})
		}
	}

	if guidance := GuidanceMarkdown(view.Assessment.Level); guidance != "" {
		if html, err := b.renderMarkdown(guidance); err == nil {
			view.GuidanceHTML = html
		}
	}

	return view
}

// RenderHTML renders the complete dashboard page
func (b *Builder) RenderHTML(view *View) (string, error) {
	data := struct {
		View *View
		CSS  template.CSS
	}{
		View: view,
		CSS:  template.CSS(pageCSS),
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buf.String(), nil
}

// renderMarkdown converts markdown guidance to HTML using goldmark
func (b *Builder) renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := b.goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
