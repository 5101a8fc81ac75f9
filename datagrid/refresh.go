package datagrid

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DefaultPullThreshold is the downward drag distance that starts a refresh.
const DefaultPullThreshold float32 = 60

// RefreshView wraps content with a pull-to-refresh gesture. Dragging the
// content down past the threshold raises Refreshing and shows a progress
// bar until EndRefresh is called.
type RefreshView struct {
	widget.BaseWidget

	// Refreshing is raised when a refresh starts.
	Refreshing Event[struct{}]
	// Threshold is the drag distance that starts a refresh.
	Threshold float32

	content    fyne.CanvasObject
	progress   *widget.ProgressBarInfinite
	enabled    bool
	refreshing bool
	pulled     float32
}

var _ fyne.Draggable = (*RefreshView)(nil)

// NewRefreshView returns an enabled RefreshView around content.
func NewRefreshView(content fyne.CanvasObject) *RefreshView {
	v := &RefreshView{
		Threshold: DefaultPullThreshold,
		content:   content,
		progress:  widget.NewProgressBarInfinite(),
		enabled:   true,
	}
	v.progress.Hide()
	v.ExtendBaseWidget(v)
	return v
}

func (v *RefreshView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVBox(v.progress, v.content))
}

// Enabled reports whether pulling starts a refresh.
func (v *RefreshView) Enabled() bool { return v.enabled }

// SetEnabled allows or forbids pulling to refresh.
func (v *RefreshView) SetEnabled(enabled bool) { v.enabled = enabled }

// IsRefreshing reports whether a refresh is in progress.
func (v *RefreshView) IsRefreshing() bool { return v.refreshing }

// Dragged accumulates the downward pull.
func (v *RefreshView) Dragged(ev *fyne.DragEvent) {
	v.pulled = max(v.pulled+ev.Dragged.DY, 0)
}

// DragEnd starts a refresh if the pull went past the threshold.
func (v *RefreshView) DragEnd() {
	pulled := v.pulled
	v.pulled = 0
	if pulled >= v.Threshold {
		v.BeginRefresh()
	}
}

// BeginRefresh shows the progress bar and raises Refreshing. It does nothing
// while disabled or already refreshing.
func (v *RefreshView) BeginRefresh() {
	if !v.enabled || v.refreshing {
		return
	}
	v.refreshing = true
	v.progress.Show()
	v.Refreshing.Emit(v, struct{}{})
}

// EndRefresh hides the progress bar.
func (v *RefreshView) EndRefresh() {
	if !v.refreshing {
		return
	}
	v.refreshing = false
	v.progress.Hide()
}
