package ui

import (
	"context"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/dropbox"
)

// DialogPrompter asks for the Dropbox authorization code in a modal form
type DialogPrompter struct {
	window       fyne.Window
	localization *Localization
}

var _ dropbox.CodePrompter = (*DialogPrompter)(nil)

// NewDialogPrompter creates a prompter attached to window
func NewDialogPrompter(window fyne.Window, loc *Localization) *DialogPrompter {
	if loc == nil {
		loc = NewLocalization()
	}
	return &DialogPrompter{window: window, localization: loc}
}

type promptResult struct {
	code string
	err  error
}

// PromptCode shows the form and blocks until the user submits, dismisses it,
// or ctx is done. It must not be called from the Fyne goroutine.
func (p *DialogPrompter) PromptCode(ctx context.Context, authURL string) (string, error) {
	result := make(chan promptResult, 1)
	respond := func(code string, err error) {
		select {
		case result <- promptResult{code: code, err: err}:
		default:
		}
	}

	var form *dialog.FormDialog
	fyne.Do(func() {
		form, _ = p.newForm(authURL, respond)
		form.Show()
	})

	select {
	case <-ctx.Done():
		fyne.Do(func() {
			if form != nil {
				form.Hide()
			}
		})
		return "", ctx.Err()
	case r := <-result:
		return r.code, r.err
	}
}

// newForm builds the authorization form; respond receives the outcome once
func (p *DialogPrompter) newForm(authURL string, respond func(string, error)) (*dialog.FormDialog, *widget.Entry) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(p.localization.GetText(KeyAuthCodeHint))

	hint := widget.NewLabel(p.localization.GetText(KeyAuthHint))
	hint.Wrapping = fyne.TextWrapWord

	items := []*widget.FormItem{
		widget.NewFormItem("", hint),
		widget.NewFormItem("", p.authLink(authURL)),
		widget.NewFormItem(p.localization.GetText(KeyAuthCode), entry),
	}

	form := dialog.NewForm(
		p.localization.GetText(KeyAuthTitle),
		p.localization.GetText(KeyConnect),
		p.localization.GetText(KeyCancel),
		items,
		func(ok bool) {
			if !ok {
				respond("", dropbox.ErrPromptCancelled)
				return
			}
			respond(strings.TrimSpace(entry.Text), nil)
		},
		p.window,
	)
	form.Resize(fyne.NewSize(AuthDialogWidth, form.MinSize().Height))

	return form, entry
}

// authLink returns a hyperlink to the authorization page, or the raw URL as a
// selectable entry when it cannot be parsed
func (p *DialogPrompter) authLink(authURL string) fyne.CanvasObject {
	u, err := url.Parse(authURL)
	if err != nil || u.Scheme == "" {
		raw := widget.NewEntry()
		raw.SetText(authURL)
		return raw
	}
	return widget.NewHyperlink(p.localization.GetText(KeyAuthOpenLink), u)
}
