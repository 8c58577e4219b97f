package events

import "github.com/atomicstack/tabpick/internal/logging"

type AppTracer struct{}

type UITracer struct{}

type SearchTracer struct{}

type SelectionTracer struct{}

var (
	App       = AppTracer{}
	UI        = UITracer{}
	Search    = SearchTracer{}
	Selection = SelectionTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(submitted bool, selected int) {
	logging.Trace("app.finish", map[string]interface{}{
		"submitted": submitted,
		"selected":  selected,
	})
}

func (UITracer) TabSwitch(tabID string) {
	logging.Trace("ui.tab-switch", map[string]interface{}{"tab": tabID})
}

func (UITracer) Cursor(tabID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"tab": tabID, "cursor": cursor})
}

func (UITracer) Submit(selected int) {
	logging.Trace("ui.submit", map[string]interface{}{"selected": selected})
}

func (UITracer) Cancel() {
	logging.Trace("ui.cancel", nil)
}

func (SearchTracer) Append(term string) {
	logging.Trace("search.append", map[string]interface{}{"term": term})
}

func (SearchTracer) Backspace(term string) {
	logging.Trace("search.backspace", map[string]interface{}{"term": term})
}

func (SearchTracer) Cleared(flash bool) {
	logging.Trace("search.clear", map[string]interface{}{"flash": flash})
}

func (SelectionTracer) Toggle(value string, selected bool, total int) {
	logging.Trace("selection.toggle", map[string]interface{}{
		"value":    value,
		"selected": selected,
		"total":    total,
	})
}

func (SelectionTracer) UnknownPreselect(value string) {
	logging.Trace("selection.unknown-preselect", map[string]interface{}{"value": value})
}
