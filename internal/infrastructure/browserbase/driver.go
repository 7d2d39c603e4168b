package browserbase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"brokerage_crm/internal/domain/entities"
	"brokerage_crm/internal/usecase/interfaces"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// PortalSelectors locate the elements a carrier portal driver interacts with.
type PortalSelectors struct {
	Username    string
	Password    string
	LoginSubmit string
	Form        string
	FormSubmit  string
	Result      string
}

func DefaultSelectors() PortalSelectors {
	return PortalSelectors{
		Username:    `input[name="username"]`,
		Password:    `input[name="password"]`,
		LoginSubmit: `form[data-login] [type="submit"]`,
		Form:        `form[data-quote-form]`,
		FormSubmit:  `form[data-quote-form] [type="submit"]`,
		Result:      ResultSelector,
	}
}

// ChromeDriver drives a carrier portal over the CDP endpoint of a remote browser session:
// log in when credentials are present, fill the quote form by field name, submit, and read
// the result page.
type ChromeDriver struct {
	sel PortalSelectors
	log *zap.Logger
}

var _ interfaces.IPortalDriver = (*ChromeDriver)(nil)

func NewChromeDriver(sel PortalSelectors, log *zap.Logger) *ChromeDriver {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChromeDriver{sel: sel, log: log}
}

const fillScript = `(function(formSel, values) {
  const form = document.querySelector(formSel);
  const filled = [];
  if (!form) return filled;
  for (const [name, value] of Object.entries(values)) {
    const el = form.querySelector('[name="' + CSS.escape(name) + '"]');
    if (!el) continue;
    if (el.type === 'checkbox') { el.checked = value === 'true'; } else { el.value = value; }
    el.dispatchEvent(new Event('input', {bubbles: true}));
    el.dispatchEvent(new Event('change', {bubbles: true}));
    filled.push(name);
  }
  return filled;
})(%s, %s)`

// Run returns an error result, not an error, when the portal itself misbehaves; an error is
// returned only when the session cannot be used at all.
func (d *ChromeDriver) Run(ctx context.Context, session interfaces.RemoteSession, spec interfaces.AutomationSpec) (entities.AutomationResult, error) {
	if session.ConnectURL == "" {
		return entities.AutomationResult{}, errors.New("session has no connect url")
	}
	if spec.PortalURL == "" {
		return entities.AutomationResult{}, errors.New("portal url is required")
	}

	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(ctx, session.ConnectURL)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	log := d.log.With(zap.String("session_id", session.SessionID), zap.String("carrier", spec.CarrierName))

	var steps []string
	step := func(name string) chromedp.Action {
		return chromedp.ActionFunc(func(context.Context) error {
			steps = append(steps, name)
			log.Debug("portal step", zap.String("step", name))
			return nil
		})
	}

	selJSON, _ := json.Marshal(d.sel.Form)
	valuesJSON, err := json.Marshal(formValues(spec.FormData))
	if err != nil {
		return entities.AutomationResult{}, fmt.Errorf("failed to encode form data: %w", err)
	}

	var (
		filled []string
		html   string
	)
	actions := []chromedp.Action{
		step("navigate"),
		chromedp.Navigate(spec.PortalURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if spec.Credentials != nil {
		actions = append(actions,
			step("login"),
			chromedp.WaitVisible(d.sel.Username, chromedp.ByQuery),
			chromedp.SendKeys(d.sel.Username, spec.Credentials.Username, chromedp.ByQuery),
			chromedp.SendKeys(d.sel.Password, spec.Credentials.Password, chromedp.ByQuery),
			chromedp.Click(d.sel.LoginSubmit, chromedp.ByQuery),
		)
	}
	actions = append(actions,
		step("fill form"),
		chromedp.WaitVisible(d.sel.Form, chromedp.ByQuery),
		chromedp.Evaluate(fmt.Sprintf(fillScript, selJSON, valuesJSON), &filled),
		step("submit"),
		chromedp.Click(d.sel.FormSubmit, chromedp.ByQuery),
		step("await result"),
		chromedp.WaitVisible(d.sel.Result, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)

	runErr := chromedp.Run(browserCtx, actions...)
	logs := formatLogs(steps, filled)
	if runErr != nil {
		last := "start"
		if len(steps) > 0 {
			last = steps[len(steps)-1]
		}
		log.Warn("portal automation failed", zap.String("step", last), zap.Error(runErr))
		return entities.AutomationResult{
			Status:       entities.AutomationStatusError,
			ErrorMessage: fmt.Sprintf("portal automation failed at %s: %v", last, runErr),
			Logs:         logs,
		}, nil
	}

	out, err := ParseResultPage(html)
	if err != nil {
		return entities.AutomationResult{Status: entities.AutomationStatusError, ErrorMessage: err.Error(), Logs: logs}, nil
	}
	return entities.AutomationResult{Status: entities.AutomationStatusSuccess, OutputData: out, Logs: logs}, nil
}

// formValues flattens form data to strings; nested values are sent as JSON.
func formValues(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))
	for k, v := range data {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			out[k] = t
		case map[string]any, []any:
			b, err := json.Marshal(t)
			if err != nil {
				continue
			}
			out[k] = string(b)
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}

func formatLogs(steps, filled []string) string {
	sorted := append([]string(nil), filled...)
	sort.Strings(sorted)
	var b strings.Builder
	b.WriteString("steps: ")
	b.WriteString(strings.Join(steps, " > "))
	if len(sorted) > 0 {
		b.WriteString("\nfilled: ")
		b.WriteString(strings.Join(sorted, ", "))
	}
	return b.String()
}
