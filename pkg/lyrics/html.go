package lyrics

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

var (
	// (?i) makes it case-insensitive
	reBreak     = regexp.MustCompile(`(?i)<br\s*/?>`)
	reParagraph = regexp.MustCompile(`(?i)</p\s*>`)
	// Whole-line annotations: "[Chorus]", "[Verse 2: Artist]", "(x2)", "x3".
	reSectionLine = regexp.MustCompile(`(?im)^[ \t]*(\[[^\]\n]*\]|\((x|×)\s*\d+\)|(x|×)\d+)[ \t]*$`)
)

// Document is the text extracted from a lyrics page.
type Document struct {
	Title  string
	Byline string
	Site   string
	Text   string
}

// SanitizeHTML turns line-break markup into newlines. Readability flattens
// <br> to nothing, which would glue the last word of one lyric line to the
// first word of the next.
func SanitizeHTML(content []byte) []byte {
	cleaned := reBreak.ReplaceAll(content, []byte("\n"))
	cleaned = reParagraph.ReplaceAll(cleaned, []byte("</p>\n"))
	return cleaned
}

// StripSectionMarkers removes lines that only annotate song structure.
func StripSectionMarkers(text string) string {
	return reSectionLine.ReplaceAllString(text, "")
}

// FromHTML extracts the main text of a lyrics page.
func FromHTML(r io.Reader, pageURL *url.URL) (Document, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read html: %w", err)
	}
	if pageURL == nil {
		pageURL = &url.URL{Scheme: "http", Host: "localhost"}
	}
	article, err := readability.FromReader(bytes.NewReader(SanitizeHTML(body)), pageURL)
	if err != nil {
		return Document{}, fmt.Errorf("extract article: %w", err)
	}
	return Document{
		Title:  strings.TrimSpace(article.Title),
		Byline: strings.TrimSpace(article.Byline),
		Site:   strings.TrimSpace(article.SiteName),
		Text:   StripSectionMarkers(article.TextContent),
	}, nil
}

// FromPlain prepares pasted or file-loaded lyrics.
func FromPlain(text string) Document {
	return Document{Text: StripSectionMarkers(text)}
}
