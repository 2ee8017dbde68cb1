package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"weather-dashboard/models"
)

func sampleView() *models.WeatherView {
	hourly := make([]models.HourEntry, 0, 24)
	for h := 0; h < 24; h++ {
		hourly = append(hourly, models.HourEntry{
			Time:          time.Date(2024, 5, 1, h, 0, 0, 0, time.UTC).Format("15:04"),
			Hour:          h,
			Temp:          10 + h/2,
			Precipitation: h,
			Icon:          "wi-day-sunny",
			Conditions:    "Clear",
			WindSpeed:     5,
		})
	}

	return &models.WeatherView{
		Location:    "Paris, France",
		Temperature: 18,
		FeelsLike:   17,
		DewPoint:    10,
		Conditions:  "Partially cloudy",
		Description: "Week description",
		Icon:        "wi-day-cloudy",
		Humidity:    56.3,
		CloudCover:  48,
		UVIndex:     4,
		Pressure:    1016,
		WindSpeed:   13,
		Visibility:  10,
		Sunrise:     "06:12",
		Sunset:      "21:02",
		Hourly:      hourly,
		TodaySummary: models.TodaySummary{
			TempMax:     21,
			TempMin:     10,
			PrecipProb:  36,
			Description: "Rain in the afternoon.",
		},
		Daily: []models.DayEntry{
			{Date: "Wed, May 1", TempMax: 21, TempMin: 10, Conditions: "Rain", Icon: "wi-rain", WindSpeed: 15, Precipitation: 36},
			{Date: "Thu, May 2", TempMax: 0, TempMin: -40, Conditions: "Snow", Icon: "wi-snow", WindSpeed: 3},
		},
	}
}

var afternoon = time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)

func TestToFahrenheit(t *testing.T) {
	tests := []struct{ c, f int }{
		{0, 32},
		{100, 212},
		{-40, -40},
		{18, 64},
		{37, 99},
	}
	for _, tt := range tests {
		if got := ToFahrenheit(tt.c); got != tt.f {
			t.Errorf("ToFahrenheit(%d) = %d, want %d", tt.c, got, tt.f)
		}
	}
}

func TestConvertTempCelsiusPassThrough(t *testing.T) {
	if got := ConvertTemp(-3, false); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}
}

func TestRenderMainInfo(t *testing.T) {
	tree := Render(sampleView(), false, afternoon)

	if tree.Unit != "C" {
		t.Errorf("expected unit C, got %s", tree.Unit)
	}
	if tree.Main.Temperature != 18 || tree.Main.FeelsLike != 17 {
		t.Errorf("unexpected main temps %+v", tree.Main)
	}
	if tree.Main.Date != "Wednesday, May 1, 2024" {
		t.Errorf("unexpected date %q", tree.Main.Date)
	}
	if tree.Main.Icon != "wi-day-cloudy" {
		t.Errorf("unexpected icon %q", tree.Main.Icon)
	}
}

func TestRenderFahrenheitFromRoundedCelsius(t *testing.T) {
	tree := Render(sampleView(), true, afternoon)

	if tree.Unit != "F" {
		t.Errorf("expected unit F, got %s", tree.Unit)
	}
	if tree.Main.Temperature != 64 {
		t.Errorf("expected 64°F from 18°C, got %d", tree.Main.Temperature)
	}
	if tree.Summary.High != 70 || tree.Summary.Low != 50 {
		t.Errorf("expected summary 70/50, got %d/%d", tree.Summary.High, tree.Summary.Low)
	}
	if tree.Daily[1].High != 32 || tree.Daily[1].Low != -40 {
		t.Errorf("expected 32/-40, got %d/%d", tree.Daily[1].High, tree.Daily[1].Low)
	}
}

func TestRenderHourlyFromCurrentHour(t *testing.T) {
	tree := Render(sampleView(), false, afternoon)

	if len(tree.Hourly) != 10 {
		t.Fatalf("expected 10 hours from 14:00, got %d", len(tree.Hourly))
	}
	if tree.Hourly[0].Label != "14:00" || !tree.Hourly[0].Current {
		t.Errorf("expected first slot 14:00 current, got %+v", tree.Hourly[0])
	}
	for _, h := range tree.Hourly[1:] {
		if h.Current {
			t.Errorf("only the first slot should be current, got %+v", h)
		}
	}

	late := Render(sampleView(), false, time.Date(2024, 5, 1, 23, 5, 0, 0, time.UTC))
	if len(late.Hourly) != 1 || late.Hourly[0].Label != "23:00" {
		t.Errorf("expected only 23:00, got %+v", late.Hourly)
	}
}

func TestRenderHourlyLabelFallback(t *testing.T) {
	view := sampleView()
	view.Hourly = []models.HourEntry{{Time: "N/A", Hour: 15, Temp: 1}}

	tree := Render(view, false, afternoon)
	if len(tree.Hourly) != 1 || tree.Hourly[0].Label != "15:00" {
		t.Errorf("expected fallback label 15:00, got %+v", tree.Hourly)
	}
}

func TestRenderMissingSequences(t *testing.T) {
	view := sampleView()
	view.Hourly = nil
	view.Daily = nil

	tree := Render(view, true, afternoon)
	if len(tree.Hourly) != 0 || len(tree.Daily) != 0 {
		t.Errorf("expected empty sequences, got %d hourly %d daily", len(tree.Hourly), len(tree.Daily))
	}
	if _, err := tree.HTML(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderNilView(t *testing.T) {
	tree := Render(nil, true, afternoon)
	if !tree.Empty {
		t.Fatal("expected empty tree")
	}

	markup, err := tree.HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(markup) != "" {
		t.Errorf("expected empty markup, got %q", markup)
	}
}

func TestRenderSummaryDescriptionFallback(t *testing.T) {
	view := sampleView()
	if got := Render(view, false, afternoon).Summary.Description; got != "Rain in the afternoon." {
		t.Errorf("unexpected summary description %q", got)
	}

	view.TodaySummary.Description = ""
	if got := Render(view, false, afternoon).Summary.Description; got != "Week description" {
		t.Errorf("expected fallback description, got %q", got)
	}
}

func parseMarkup(t *testing.T, tree DisplayTree) *goquery.Document {
	t.Helper()
	markup, err := tree.HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

func TestHTMLRegionsInOrder(t *testing.T) {
	doc := parseMarkup(t, Render(sampleView(), false, afternoon))

	var regions []string
	doc.Find(".weather-info").Children().Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		regions = append(regions, class)
	})

	want := []string{"main-info", "forecast-summary", "hourly-forecast", "daily-forecast", "details"}
	if strings.Join(regions, ",") != strings.Join(want, ",") {
		t.Errorf("expected regions %v, got %v", want, regions)
	}
}

func TestHTMLContent(t *testing.T) {
	doc := parseMarkup(t, Render(sampleView(), true, afternoon))

	if got := doc.Find(".main-info .temperature").Text(); got != "64°F" {
		t.Errorf("expected 64°F, got %q", got)
	}
	if got := doc.Find(".main-info h2").Text(); got != "Paris, France" {
		t.Errorf("expected location, got %q", got)
	}
	if !doc.Find(".main-info i.wi-day-cloudy").Is("i") {
		t.Error("expected main icon wi-day-cloudy")
	}
	if got := doc.Find(".hour-item").Length(); got != 10 {
		t.Errorf("expected 10 hour items, got %d", got)
	}
	if got := doc.Find(".hour-item.current-hour .hour-time").Text(); got != "14:00" {
		t.Errorf("expected current hour 14:00, got %q", got)
	}
	if got := doc.Find(".day-item").Length(); got != 2 {
		t.Errorf("expected 2 day items, got %d", got)
	}
	if got := doc.Find(".detail-item").Length(); got != 9 {
		t.Errorf("expected 9 detail items, got %d", got)
	}
	if got := doc.Find(".detail-value").First().Text(); got != "56.3%" {
		t.Errorf("expected humidity 56.3%%, got %q", got)
	}
}

func TestHTMLEscapesVendorText(t *testing.T) {
	view := sampleView()
	view.Location = `<script>alert("x")</script>`

	markup, err := Render(view, false, afternoon).HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(markup, "<script>") {
		t.Error("expected location to be escaped")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(sampleView(), true, afternoon).WriteText(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Paris, France", "64°F", "14:00 *", "Wed, May 1", "Pressure:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func withOffset(view *models.WeatherView, zone string, hours float64) *models.WeatherView {
	view.Timezone = zone
	view.TZOffset = &hours
	return view
}

func TestRenderUsesLocationTimezone(t *testing.T) {
	serverNow := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tree := Render(withOffset(sampleView(), "", 2), false, serverNow)
	if len(tree.Hourly) != 10 {
		t.Fatalf("expected 10 hours from local 14:00, got %d", len(tree.Hourly))
	}
	if tree.Hourly[0].Label != "14:00" || !tree.Hourly[0].Current {
		t.Errorf("expected current slot 14:00, got %+v", tree.Hourly[0])
	}

	// неизвестное имя зоны: берётся смещение
	west := Render(withOffset(sampleView(), "Nowhere/Unknown", -5), false, serverNow)
	if west.Hourly[0].Label != "07:00" {
		t.Errorf("expected current slot 07:00, got %+v", west.Hourly[0])
	}
}

func TestRenderDateInLocationTimezone(t *testing.T) {
	serverNow := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	tree := Render(withOffset(sampleView(), "", 2), false, serverNow)
	if tree.Main.Date != "Thursday, May 2, 2024" {
		t.Errorf("expected local date Thursday, May 2, 2024, got %q", tree.Main.Date)
	}
	if tree.Hourly[0].Label != "01:00" {
		t.Errorf("expected current slot 01:00, got %+v", tree.Hourly[0])
	}
}

func TestLocalTimeWithoutZone(t *testing.T) {
	if got := LocalTime(sampleView(), afternoon); !got.Equal(afternoon) || got.Location() != time.UTC {
		t.Errorf("expected now unchanged, got %v", got)
	}
	if got := LocalTime(nil, afternoon); !got.Equal(afternoon) {
		t.Errorf("expected now unchanged for nil view, got %v", got)
	}
}
