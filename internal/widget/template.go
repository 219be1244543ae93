package widget

// WidgetTemplate is a registry entry: an HTML skeleton, a CSS ruleset and a
// JS behavior block, all carrying {{TOKEN}} placeholders filled by the
// substitution engine.
type WidgetTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HTML        string `json:"-"`
	CSS         string `json:"-"`
	JS          string `json:"-"`
}

// DefaultTemplateID is the registry entry every miss falls back to.
const DefaultTemplateID = "default"

// Lookup returns the template with the given id, falling back to the
// default entry on any miss. Visual degradation beats a broken widget, so
// this never errors.
func Lookup(id string) WidgetTemplate {
	if t, ok := registry[id]; ok {
		return t
	}
	return registry[DefaultTemplateID]
}

// Known reports whether id is a registered template. Callers use it to log
// fallbacks; Lookup itself stays silent.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// Templates lists all registry entries for the admin UI, default first.
func Templates() []WidgetTemplate {
	out := make([]WidgetTemplate, 0, len(registry))
	out = append(out, registry[DefaultTemplateID])
	for _, id := range templateOrder {
		if id != DefaultTemplateID {
			out = append(out, registry[id])
		}
	}
	return out
}
