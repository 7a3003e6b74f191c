package page

import (
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"edna-quiz/quiz"
)

const viewTemplates = `
{{define "buttons"}}<form method="get" action="{{.Action}}" class="water-buttons">
<input type="hidden" name="level" value="{{.Level}}">
<input type="hidden" name="lang" value="{{.Lang}}">
{{range .Buttons}}<button type="submit" name="water" value="{{.Key}}">{{.Title}}</button>
{{end}}</form>{{end}}

{{define "rows"}}<form id="quiz-form" method="post" action="{{.Action}}">
<input type="hidden" name="water" value="{{.Water}}">
<input type="hidden" name="level" value="{{.Level}}">
<input type="hidden" name="lang" value="{{.Lang}}">
{{range .Rows}}<div class="code-row">
<span class="code-label">{{.Label}}</span>
<div class="code-item">{{.Cell}}</div>
<select id="select-{{.Index}}" name="select-{{.Index}}">
<option value="" disabled{{if .PlaceholderSelected}} selected{{end}}>{{$.Placeholder}}</option>
{{range .Options}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
<span id="result-{{.Index}}" class="result"></span>
</div>
{{end}}</form>{{end}}
`

var tmpl = template.Must(template.New("view").Parse(viewTemplates))

type waterButton struct {
	Key   string
	Title string
}

type rowOption struct {
	Name     string
	Selected bool
}

type rowView struct {
	Index               int
	Label               string
	Cell                template.HTML
	PlaceholderSelected bool
	Options             []rowOption
}

// View is one render of a host page.
type View struct {
	doc    *goquery.Document
	caps   Capabilities
	locale quiz.Locale
	level  quiz.Level
	action string
}

func (v *View) byID(id string) *goquery.Selection {
	return v.doc.Find("#" + id)
}

// BuildWaterButtons replaces the button container's content with one
// button per water type, in dataset order.
func (v *View) BuildWaterButtons(c *quiz.Catalog) error {
	buttons := make([]waterButton, 0, len(c.WaterKeys()))
	for _, key := range c.WaterKeys() {
		w, _ := c.Data.WaterType(key)
		buttons = append(buttons, waterButton{Key: key, Title: w.TitleFor(v.locale)})
	}

	var b strings.Builder
	err := tmpl.ExecuteTemplate(&b, "buttons", map[string]any{
		"Action":  v.action,
		"Level":   string(v.level),
		"Lang":    string(v.locale),
		"Buttons": buttons,
	})
	if err != nil {
		return fmt.Errorf("rendering water buttons: %w", err)
	}
	v.byID(IDButtons).Empty()
	v.byID(IDButtons).AppendHtml(b.String())
	return nil
}

// HideResults hides the results area and clears its title.
func (v *View) HideResults() {
	v.byID(IDResults).SetAttr("style", "display: none")
	v.byID(IDTitle).SetText("")
}

func (v *View) showResults() {
	v.byID(IDResults).SetAttr("style", "display: block")
}

// OpenWaterType renders the title and rows of the session's open water
// type and makes the results area visible.
func (v *View) OpenWaterType(s *quiz.Session) error {
	key, ok := s.Current()
	if !ok {
		return quiz.ErrNoWaterType
	}
	v.byID(IDTitle).SetText(s.Title())
	if err := v.renderCodeList(key, s); err != nil {
		return err
	}
	v.showResults()
	return nil
}

func (v *View) renderCodeList(key string, s *quiz.Session) error {
	species := s.Species()
	rows := s.Rows()

	views := make([]rowView, len(rows))
	for i, r := range rows {
		opts := make([]rowOption, len(species))
		for j, name := range species {
			opts[j] = rowOption{Name: name, Selected: r.Selected != "" && r.Selected == name}
		}
		views[i] = rowView{
			Index:               r.Index,
			Label:               r.Label(),
			Cell:                renderCell(r.Display),
			PlaceholderSelected: r.Selected == "",
			Options:             opts,
		}
	}

	var b strings.Builder
	err := tmpl.ExecuteTemplate(&b, "rows", map[string]any{
		"Action":      v.action,
		"Water":       key,
		"Level":       string(v.level),
		"Lang":        string(v.locale),
		"Placeholder": v.locale.Placeholder(),
		"Rows":        views,
	})
	if err != nil {
		return fmt.Errorf("rendering code list: %w", err)
	}
	v.byID(IDCodes).Empty()
	v.byID(IDCodes).AppendHtml(b.String())
	return nil
}

func renderCell(c quiz.Cell) template.HTML {
	if c.IsSequence() {
		return ColorizeHTML(c.Sequence)
	}
	return template.HTML(html.EscapeString(c.Icon))
}

// ColorizeHTML wraps every A/C/G/T (any case) in its base span. Other
// characters are escaped and passed through.
func ColorizeHTML(seq string) template.HTML {
	var b strings.Builder
	for _, r := range seq {
		if base := quiz.Base(r); base != 0 {
			fmt.Fprintf(&b, `<span class="base %s">%c</span>`, quiz.BaseClass(base), base)
			continue
		}
		b.WriteString(html.EscapeString(string(r)))
	}
	return template.HTML(b.String())
}

// ApplyReport writes each row's marker and the summary. Marker slots
// missing from the page are skipped. Without a status line the summary is
// only logged.
func (v *View) ApplyReport(rep quiz.Report) {
	for i, m := range rep.Marks {
		slot := v.byID(fmt.Sprintf("result-%d", i))
		if slot.Length() == 0 {
			continue
		}
		slot.SetText(v.locale.MarkText(m))
		slot.SetAttr("aria-label", v.locale.MarkAria(m))
	}
	v.SetStatus(rep.Summary)
}

// SetStatus writes the status line if the page has one.
func (v *View) SetStatus(text string) {
	if !v.caps.HasStatusLine {
		if text != "" {
			slog.Info("quiz checked", "summary", text)
		}
		return
	}
	v.byID(IDStatus).SetText(text)
}

// ShowLoadError puts the localized failure message in the title region
// and forces the results area visible.
func (v *View) ShowLoadError() {
	v.byID(IDTitle).SetText(v.locale.LoadFailed())
	v.showResults()
}

// WireControls attaches the optional check and reset controls to the quiz
// form. Controls the page does not have are skipped.
func (v *View) WireControls() {
	wire := func(id, action, label string) {
		btn := v.byID(id)
		btn.SetAttr("type", "submit")
		btn.SetAttr("form", IDQuizForm)
		btn.SetAttr("name", "action")
		btn.SetAttr("value", action)
		if strings.TrimSpace(btn.Text()) == "" {
			btn.SetText(label)
		}
	}
	if v.caps.HasCheckControl {
		wire(IDCheck, ActionCheck, v.locale.CheckLabel())
	}
	if v.caps.HasResetControl {
		wire(IDReset, ActionReset, v.locale.ResetLabel())
	}
}

// HTML serializes the rendered page.
func (v *View) HTML() (string, error) {
	return v.doc.Html()
}
