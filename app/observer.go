package app

// An Observer is told the outcome of each request an *Application handles.
// [*github.com/xy-planning-network/frontdesk/metrics.Recorder] implements Observer.
type Observer interface {
	ObserveAjax(method, outcome string)
	ObserveRoute(route, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveAjax(string, string)  {}
func (nopObserver) ObserveRoute(string, string) {}
