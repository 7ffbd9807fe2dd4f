package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/kasuboski/mediarec/pkg/manager"
	"github.com/kasuboski/mediarec/pkg/media"
	"github.com/kasuboski/mediarec/pkg/recommend"
)

const overviewWidth = 76

// printer renders manager results for a terminal. Styles degrade to plain
// text when w is not a terminal.
type printer struct {
	w io.Writer

	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	dim     lipgloss.Style
	body    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		heading: r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("241")),
		body:    r.NewStyle().Width(overviewWidth).PaddingLeft(2),
	}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) field(name, value string) {
	if value == "" {
		return
	}
	p.line("  %s %s", p.label.Render(name+":"), value)
}

// record prints the full details of a looked up title
func (p *printer) record(rec media.Record, repeat bool) {
	header := fmt.Sprintf("%s (%s)", rec.Title, rec.Year)
	if repeat {
		header += " " + p.dim.Render("[seen before]")
	}
	p.line("%s", p.title.Render(header))

	p.field("Type", typeLabel(rec.Type))
	p.field("Rating", fmt.Sprintf("%.1f/10", rec.Rating))
	p.field("Genres", strings.Join(rec.Genres, ", "))
	switch rec.Type {
	case media.Movie:
		p.field("Director", rec.Director)
	case media.TV:
		if rec.Seasons > 0 {
			p.field("Seasons", humanize.Comma(int64(rec.Seasons)))
		}
	}
	p.field("Cast", strings.Join(rec.Actors, ", "))

	if rec.Overview != "" {
		p.line("%s", p.body.Render(rec.Overview))
	}
}

// list prints a numbered list of short records
func (p *printer) list(heading string, recs []media.Record) {
	p.line("")
	p.line("%s", p.heading.Render(heading))
	if len(recs) == 0 {
		p.line("  %s", p.dim.Render("nothing to show yet"))
		return
	}

	for i, rec := range recs {
		genres := ""
		if len(rec.Genres) > 0 {
			genres = " " + p.dim.Render(strings.Join(rec.Genres, ", "))
		}
		p.line("  %d. %s (%s) %.1f%s", i+1, rec.Title, rec.Year, rec.Rating, genres)
	}
}

func (p *printer) people(res manager.PeopleResult) {
	p.list(fmt.Sprintf("Top movies with %s as %s", res.Name, res.Role), res.Items)
}

func (p *printer) genre(res manager.GenreResult) {
	p.list(fmt.Sprintf("Popular %s in %s", pluralType(res.Type), res.Genre), res.Items)
}

// stats prints what has been learned so far, relative to now
func (p *printer) stats(s manager.Stats, now time.Time) {
	p.line("%s", p.title.Render("Your viewing profile"))
	p.field("Lookups", humanize.Comma(int64(s.History)))
	p.field("Known titles", fmt.Sprintf("%s movies, %s tv shows", humanize.Comma(int64(s.Movies)), humanize.Comma(int64(s.TVShows))))
	p.field("Genres known", humanize.Comma(int64(s.Genres)))
	p.field("Rules", humanize.Comma(int64(s.Rules)))
	p.field("Last watched", s.LastWatched)
	if !s.UpdatedAt.IsZero() {
		p.field("Updated", humanize.RelTime(s.UpdatedAt, now, "ago", "from now"))
	}

	for _, c := range recommend.Categories {
		top := s.Top[c.String()]
		if len(top) == 0 {
			continue
		}
		p.line("")
		p.line("%s", p.heading.Render(categoryLabel(c)))
		for i, entry := range top {
			p.line("  %s %s %s", humanize.Ordinal(i+1), entry.Name, p.dim.Render(fmt.Sprintf("(%d)", entry.Count)))
		}
	}
}

func typeLabel(mt media.Type) string {
	if mt == media.TV {
		return "TV show"
	}
	return "Movie"
}

func pluralType(mt media.Type) string {
	if mt == media.TV {
		return "tv shows"
	}
	return "movies"
}

func categoryLabel(c recommend.Category) string {
	switch c {
	case recommend.MovieGenres:
		return "Favorite movie genres"
	case recommend.TVGenres:
		return "Favorite tv genres"
	case recommend.Actors:
		return "Favorite actors"
	case recommend.Directors:
		return "Favorite directors"
	}
	return c.String()
}
