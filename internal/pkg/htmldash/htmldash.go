package htmldash

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a combined dashboard payload into a self-contained HTML
// page. The chart data is embedded as JSON and drawn client-side.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

type pageData struct {
	Title       string
	GeneratedAt string
	Metrics     dashboard.MetricsResponse
	Payload     template.JS
}

// Render writes the dashboard page for the given data.
func (r *Renderer) Render(w io.Writer, data *dashboard.DashboardResponse) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode dashboard payload: %w", err)
	}

	return r.templates.ExecuteTemplate(w, "dashboard.html", pageData{
		Title:       "Duty Schedule Dashboard",
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Metrics:     data.Metrics,
		Payload:     template.JS(payload),
	})
}
