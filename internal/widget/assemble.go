package widget

import (
	"encoding/json"
	"fmt"

	"github.com/bubbletap/bubbletap/internal/domain"
)

// MarkerAttr tags every DOM node the widget injects. Re-injection removes
// nodes carrying it first, so double-loading the script never duplicates
// the widget.
const MarkerAttr = "data-bubbletap-widget"

// PreviewMarkerAttr tags nodes injected by the builder's live preview so
// its cleanup never touches a production widget on the same page.
const PreviewMarkerAttr = "data-widget-preview"

// Preview holds the substituted fragments the builder UI injects directly
// into its document. The contract (marker tag, cleanup before re-insert,
// cleanup on unmount) mirrors the injectable script's.
type Preview struct {
	HTML   string `json:"html"`
	CSS    string `json:"css"`
	JS     string `json:"js"`
	Marker string `json:"marker"`
}

// BuildScript renders a widget configuration into a single self-invoking
// injectable script. Substitution failures degrade to a console-error stub;
// no exception ever escapes into the host page. The non-nil error on that
// path lets callers treat the stub as a failure (and keep it out of caches)
// while still serving valid JavaScript.
func BuildScript(cfg domain.WidgetConfig) (script string, err error) {
	defer func() {
		if r := recover(); r != nil {
			script = ErrorScript("render failed")
			err = fmt.Errorf("assemble script: %v", r)
		}
	}()

	html, css, js := Render(Lookup(cfg.TemplateID), cfg)

	// embed the fragments as JS string literals; Marshal handles escaping
	htmlLit, _ := json.Marshal(html)
	cssLit, _ := json.Marshal(css)

	return fmt.Sprintf(`(function () {
  try {
    var marker = %q;
    var stale = document.querySelectorAll('[' + marker + ']');
    Array.prototype.forEach.call(stale, function (n) {
      if (n.parentNode) { n.parentNode.removeChild(n); }
    });
    var style = document.createElement('style');
    style.setAttribute(marker, 'style');
    style.textContent = %s;
    document.head.appendChild(style);
    var container = document.createElement('div');
    container.setAttribute(marker, 'true');
    container.innerHTML = %s;
    document.body.appendChild(container);
    %s
  } catch (err) {
    console.error('[bubbletap] widget failed to render:', err);
  }
})();
`, MarkerAttr, cssLit, htmlLit, js), nil
}

// BuildPreview renders the same fragments as BuildScript but leaves DOM
// injection to the caller (the builder UI), so preview and delivery stay
// pixel-identical.
func BuildPreview(cfg domain.WidgetConfig) (p Preview, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("preview render failed: %v", r)
		}
	}()

	html, css, js := Render(Lookup(cfg.TemplateID), cfg)
	return Preview{HTML: html, CSS: css, JS: js, Marker: PreviewMarkerAttr}, nil
}

// DeniedScript is served when the delivery gate refuses a widget. Its only
// effect is a console error: no credits means no visible widget, never a
// broken one.
func DeniedScript(reason string) string {
	return consoleOnlyScript("widget not delivered: " + reason)
}

// ErrorScript is the degraded output for assembly failures.
func ErrorScript(reason string) string {
	return consoleOnlyScript(reason)
}

func consoleOnlyScript(msg string) string {
	lit, _ := json.Marshal("[bubbletap] " + msg)
	return fmt.Sprintf("(function(){console.error(%s);})();\n", lit)
}
