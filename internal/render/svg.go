package render

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-badges/internal/domain"
)

const (
	statsWidth  = 540
	statsHeight = 120

	langsWidth  = 520
	langsHeight = 160
	// topLanguages is how many ranked languages the chart lists.
	topLanguages = 6
	langsFirstY  = 30
	langsLineGap = 22

	snakeWidth  = 800
	snakeHeight = 160
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("badges").
		Funcs(template.FuncMap{
			"esc": template.HTMLEscapeString,
		}).
		ParseFS(templateFS, "templates/*.svg.tmpl"),
)

type canvas struct {
	Width  int
	Height int
	Theme  Theme
}

type statsViewModel struct {
	canvas
	Login       string
	Followers   int
	PublicRepos int
	Stars       int
	Company     string
}

type langLine struct {
	Y       int
	Rank    int
	Name    string
	Percent int
}

type langsViewModel struct {
	canvas
	Username string
	Lines    []langLine
}

type heatmapCell struct {
	X     int
	Y     int
	Size  int
	Fill  string
	Date  string
	Count int
}

type heatmapViewModel struct {
	canvas
	Username string
	Cells    []heatmapCell
}

type snakeViewModel struct {
	canvas
	Points string
}

// Stats renders the profile badge.
func Stats(s domain.UserStats, theme Theme) ([]byte, error) {
	company := s.Profile.Company
	if company == "" {
		company = "—"
	}
	vm := statsViewModel{
		canvas:      canvas{Width: statsWidth, Height: statsHeight, Theme: theme},
		Login:       s.Profile.Login,
		Followers:   s.Profile.Followers,
		PublicRepos: s.Profile.PublicRepos,
		Stars:       s.Stars,
		Company:     company,
	}
	return execute("stats.svg.tmpl", vm)
}

// Languages renders the top languages as a ranked list with their share of all bytes.
// Shares are taken over the whole list, so the listed ones need not add up to 100.
func Languages(username string, langs []domain.LanguageStat, theme Theme) ([]byte, error) {
	var total int64
	for _, l := range langs {
		total += l.Bytes
	}
	if total < 1 {
		total = 1
	}

	shown := langs
	if len(shown) > topLanguages {
		shown = shown[:topLanguages]
	}

	lines := make([]langLine, 0, len(shown))
	for i, l := range shown {
		pct, err := stats.Round(float64(l.Bytes)/float64(total)*100, 0)
		if err != nil {
			return nil, fmt.Errorf("render languages: %w", err)
		}
		lines = append(lines, langLine{
			Y:       langsFirstY + i*langsLineGap,
			Rank:    i + 1,
			Name:    l.Name,
			Percent: int(pct),
		})
	}

	vm := langsViewModel{
		canvas:   canvas{Width: langsWidth, Height: langsHeight, Theme: theme},
		Username: username,
		Lines:    lines,
	}
	return execute("langs.svg.tmpl", vm)
}

// Heatmap renders one rounded cell per day slot, colored by the day's share of
// maxCount, the busiest day. Missing days in a short final week render as zero.
func Heatmap(username string, weeks []domain.ContributionWeek, maxCount int, theme Theme, grid GridLayout) ([]byte, error) {
	cells := make([]heatmapCell, 0, len(weeks)*domain.DaysPerWeek)
	for w, week := range weeks {
		for d := 0; d < domain.DaysPerWeek; d++ {
			day := week.Day(d)
			x, y := grid.CellOrigin(w, d)
			cells = append(cells, heatmapCell{
				X:     x,
				Y:     y,
				Size:  grid.Cell,
				Fill:  theme.CellColor(day.Count, maxCount),
				Date:  day.Date,
				Count: day.Count,
			})
		}
	}

	vm := heatmapViewModel{
		canvas:   canvas{Width: grid.Width(len(weeks)), Height: grid.Height(), Theme: theme},
		Username: username,
		Cells:    cells,
	}
	return execute("contrib.svg.tmpl", vm)
}

// Snake renders a looping polyline through every cell centre, week by week.
func Snake(weeks []domain.ContributionWeek, theme Theme, grid GridLayout) ([]byte, error) {
	vm := snakeViewModel{
		canvas: canvas{Width: snakeWidth, Height: snakeHeight, Theme: theme},
		Points: SnakePoints(weeks, grid),
	}
	return execute("snake.svg.tmpl", vm)
}

// SnakePoints is the polyline "x,y x,y ..." list, week-major and day-minor.
// Every slot is included regardless of its count.
func SnakePoints(weeks []domain.ContributionWeek, grid GridLayout) string {
	points := make([]string, 0, len(weeks)*domain.DaysPerWeek)
	for w := range weeks {
		for d := 0; d < domain.DaysPerWeek; d++ {
			x, y := grid.CellCenter(w, d)
			points = append(points, formatNum(x)+","+formatNum(y))
		}
	}
	return strings.Join(points, " ")
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func execute(name string, vm any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, vm); err != nil {
		return nil, fmt.Errorf("render %s: %w", strings.TrimSuffix(name, ".svg.tmpl"), err)
	}
	return buf.Bytes(), nil
}
