package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"
)

const markup = `{{define "main"}}<div class="main-info">
  <div class="location-container">
    <h2>{{.Main.Location}}</h2>
    <div class="current-date">{{.Main.Date}}</div>
    <div class="current-weather">
      <i class="wi {{.Main.Icon}} weather-icon"></i>
      <div class="temperature">{{.Main.Temperature}}°{{.Unit}}</div>
    </div>
    <div class="conditions">{{.Main.Conditions}}</div>
    <div class="feels-like">Feels like: {{.Main.FeelsLike}}°{{.Unit}}</div>
  </div>
</div>{{end}}
{{define "summary"}}<div class="forecast-summary">
  <h3>Today's Forecast</h3>
  <p class="summary-description">{{.Summary.Description}}</p>
  <div class="temp-range">
    <span class="high">High: {{.Summary.High}}°{{.Unit}}</span>
    <span class="low">Low: {{.Summary.Low}}°{{.Unit}}</span>
  </div>
  <p class="precip">Precipitation Chance: {{.Summary.PrecipProb}}%</p>
</div>{{end}}
{{define "hourly"}}<div class="hourly-forecast">
  <h3>Hourly Forecast</h3>
  <div class="hourly-scroll">{{$unit := .Unit}}{{range .Hourly}}
    <div class="hour-item{{if .Current}} current-hour{{end}}">
      <div class="hour-time">{{.Label}}</div>
      <div class="hour-temp">{{.Temp}}°{{$unit}}</div>
      <div class="hour-precip">{{.Precipitation}}%</div>
      <div class="hour-conditions"><i class="wi {{.Icon}}" title="{{.Conditions}}"></i></div>
      <div class="hour-wind">{{.WindSpeed}} km/h</div>
    </div>{{end}}
  </div>
</div>{{end}}
{{define "daily"}}<div class="daily-forecast">
  <h3>Daily Forecast</h3>{{range .Daily}}
  <div class="day-item">
    <div class="day-date">{{.Date}}</div>
    <div class="day-conditions"><i class="wi {{.Icon}}"></i> {{.Conditions}}</div>
    <div class="day-temps">
      <span class="high">{{.High}}°</span>
      <span class="low">{{.Low}}°</span>
    </div>
  </div>{{end}}
</div>{{end}}
{{define "details"}}<div class="details">{{range .Details}}
  <div class="detail-item">
    <i class="wi {{.Icon}} detail-icon"></i>
    <div class="detail-info">
      <div class="detail-label">{{.Label}}</div>
      <div class="detail-value">{{.Value}}</div>
    </div>
  </div>{{end}}
</div>{{end}}
{{define "tree"}}{{if not .Empty}}<div class="weather-card">
  <div class="weather-info">
{{template "main" .}}
{{template "summary" .}}
{{template "hourly" .}}
{{template "daily" .}}
{{template "details" .}}
  </div>
</div>{{end}}{{end}}`

var templates = template.Must(template.New("render").Parse(markup))

// WriteHTML пишет разметку всех областей в порядке отображения
func (t DisplayTree) WriteHTML(w io.Writer) error {
	return templates.ExecuteTemplate(w, "tree", t)
}

// HTML разметка дерева целиком
func (t DisplayTree) HTML() (string, error) {
	var buf bytes.Buffer
	if err := t.WriteHTML(&buf); err != nil {
		return "", fmt.Errorf("ошибка рендеринга: %w", err)
	}
	return buf.String(), nil
}

// WriteText текстовое представление для CLI
func (t DisplayTree) WriteText(w io.Writer) error {
	if t.Empty {
		_, err := fmt.Fprintln(w, "Нет данных")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n%s\n\n", t.Main.Location, t.Main.Date)
	fmt.Fprintf(tw, "Температура:\t%d°%s (ощущается как %d°%s)\n", t.Main.Temperature, t.Unit, t.Main.FeelsLike, t.Unit)
	fmt.Fprintf(tw, "Условия:\t%s\n", t.Main.Conditions)
	fmt.Fprintf(tw, "Сегодня:\t%d°%s / %d°%s, осадки %d%%\n", t.Summary.High, t.Unit, t.Summary.Low, t.Unit, t.Summary.PrecipProb)
	fmt.Fprintf(tw, "\t%s\n\n", t.Summary.Description)

	fmt.Fprintln(tw, "По часам:")
	for _, h := range t.Hourly {
		marker := ""
		if h.Current {
			marker = " *"
		}
		fmt.Fprintf(tw, "  %s%s\t%d°%s\t%d%%\t%d km/h\t%s\n", h.Label, marker, h.Temp, t.Unit, h.Precipitation, h.WindSpeed, h.Conditions)
	}

	fmt.Fprintln(tw, "\nПо дням:")
	for _, d := range t.Daily {
		fmt.Fprintf(tw, "  %s\t%d° / %d°\t%d%%\t%s\n", d.Date, d.High, d.Low, d.Precipitation, d.Conditions)
	}

	fmt.Fprintln(tw, "\nПодробности:")
	for _, d := range t.Details {
		fmt.Fprintf(tw, "  %s:\t%s\n", d.Label, d.Value)
	}

	return tw.Flush()
}
