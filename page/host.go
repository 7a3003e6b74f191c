// Package page renders the quiz into a host HTML page.
//
// A host page supplies container elements with well-known ids; the
// renderer fills them in server-side. Required containers that a page
// lacks are appended to its body. Optional controls (check, reset, status
// line) are detected once when the page is parsed.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"

	"edna-quiz/quiz"
)

// Element ids of the host page contract.
const (
	IDButtons   = "buttons-container"
	IDResults   = "result-container"
	IDTitle     = "result-title"
	IDCodes     = "code-container"
	IDCheck     = "check-btn"
	IDReset     = "reset-btn"
	IDStatus    = "status-line"
	IDQuizForm  = "quiz-form"
	ActionCheck = "check"
	ActionReset = "reset"
)

var requiredIDs = []string{IDButtons, IDResults, IDTitle, IDCodes}

//go:embed static/index.html
var defaultPage []byte

// Capabilities are the optional affordances a host page offers.
type Capabilities struct {
	HasCheckControl bool
	HasResetControl bool
	HasStatusLine   bool
}

// Host is a parsed host page. It is immutable and safe for concurrent use;
// every request renders into its own View.
type Host struct {
	html []byte
	Lang string
	Caps Capabilities
}

// Default returns the embedded host page.
func Default() *Host {
	h, err := ParseHost(bytes.NewReader(defaultPage))
	if err != nil {
		panic(fmt.Sprintf("page: embedded host page: %v", err))
	}
	return h
}

// LoadHost reads a host page from disk, or returns the embedded page when
// path is empty.
func LoadHost(path string) (*Host, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening host page: %w", err)
	}
	defer f.Close()
	return ParseHost(f)
}

// ParseHost parses a host page and resolves its capabilities.
func ParseHost(r io.Reader) (*Host, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing host page: %w", err)
	}

	body := doc.Find("body")
	for _, id := range requiredIDs {
		if doc.Find("#"+id).Length() == 0 {
			body.AppendHtml(fmt.Sprintf(`<div id="%s"></div>`, id))
		}
	}

	lang, _ := doc.Find("html").Attr("lang")
	html, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("serializing host page: %w", err)
	}

	return &Host{
		html: []byte(html),
		Lang: lang,
		Caps: Capabilities{
			HasCheckControl: doc.Find("#"+IDCheck).Length() > 0,
			HasResetControl: doc.Find("#"+IDReset).Length() > 0,
			HasStatusLine:   doc.Find("#"+IDStatus).Length() > 0,
		},
	}, nil
}

// Locale resolves the locale for a request path.
func (h *Host) Locale(path string) quiz.Locale {
	return quiz.DetectLocale(h.Lang, path)
}

// NewView starts a fresh render of the host page. action is the path the
// page's forms submit to.
func (h *Host) NewView(loc quiz.Locale, level quiz.Level, action string) (*View, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(h.html))
	if err != nil {
		return nil, fmt.Errorf("parsing host page: %w", err)
	}
	return &View{
		doc:    doc,
		caps:   h.Caps,
		locale: loc,
		level:  level,
		action: action,
	}, nil
}
