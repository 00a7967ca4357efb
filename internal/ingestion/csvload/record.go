package csvload

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cinerank/internal/api/models"
)

// genreSeparators matches " - ", "/", "," and friends; a category cell like
// "Biografía - Música" yields two genres.
var genreSeparators = regexp.MustCompile(`\s*[-/]\s*|\s*,\s*`)

// SplitGenres breaks a raw category cell into distinct genre names,
// preserving order and dropping empties.
func SplitGenres(raw string) []string {
	parts := genreSeparators.Split(raw, -1)
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// Record is one parsed data-file row.
type Record struct {
	Title     string
	Year      int
	Synopsis  string
	Genres    []string
	PosterURL string
	Type      string
	Director  string
	Cast      string
}

// Header maps column names to positions, DictReader style. Unlike the web
// upload, the batch files are keyed by header rather than position.
type Header map[string]int

func ParseHeader(row []string) Header {
	header := make(Header, len(row))
	for i, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return header
}

func (h Header) get(row []string, column string) string {
	idx, ok := h[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseRecord builds a Record from one row. Batch semantics differ from the
// upload path on purpose: a non-numeric year becomes 0 instead of failing
// the row, and director/cast fall back to the catalog defaults.
func ParseRecord(header Header, row []string) (Record, error) {
	record := Record{
		Title:     header.get(row, "title"),
		Synopsis:  header.get(row, "synopsis"),
		Genres:    SplitGenres(header.get(row, "category")),
		PosterURL: header.get(row, "poster_url"),
		Director:  header.get(row, "director"),
		Cast:      header.get(row, "cast"),
	}
	if record.Title == "" {
		return Record{}, fmt.Errorf("row has no title")
	}

	if year, err := strconv.Atoi(header.get(row, "year")); err == nil {
		record.Year = year
	}

	rawType := header.get(row, "type")
	if rawType == "" {
		record.Type = models.TypeMovie
	} else {
		itemType, err := models.ParseItemType(rawType)
		if err != nil {
			return Record{}, fmt.Errorf("row %q: bad type %q", record.Title, rawType)
		}
		record.Type = itemType
	}

	if record.Director == "" {
		record.Director = "Unknown"
	}
	if record.Cast == "" {
		record.Cast = "Various"
	}
	return record, nil
}
