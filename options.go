package gui

// Option configures a widget.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed option key. Built-in keys are declared below; packages
// building their own widgets declare more with NewOptKey.
//
//	var OptMaxEntries = gui.NewOptKey("maxEntries", 0)
//	ctx.MyWidget("log", gui.WithOpt(OptMaxEntries, 500))
//	n := gui.ApplyAndGet(opts, OptMaxEntries)
type OptKey[T any] struct {
	name string
	def  T
}

func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

func (k OptKey[T]) Name() string { return k.name }

func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets the value of key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the value of key, or its default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies opts and returns the value of key.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck applies opts and returns the value of key and whether it was set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// ScrollbarVisibility controls when a scrollbar is drawn.
type ScrollbarVisibility int

const (
	ScrollbarAuto ScrollbarVisibility = iota // when content overflows
	ScrollbarAlways
	ScrollbarNever
)

// RangeValue bounds a slider.
type RangeValue struct {
	Min, Max float32
	HasRange bool
}

// FocusValue is a content-relative Y a Scrollable keeps visible.
type FocusValue struct {
	Y       float32
	Padding float32
	Set     bool
}

var (
	OptID         = NewOptKey("id", "")
	OptDisabled   = NewOptKey("disabled", false)
	OptForceFocus = NewOptKey("forceFocus", false)
	OptWidth      = NewOptKey[float32]("width", 0)
	OptHeight     = NewOptKey[float32]("height", 0)
	OptHint       = NewOptKey("hint", "")
)

var (
	OptFormat = NewOptKey("format", "")
	OptStep   = NewOptKey[float32]("step", 0)
	OptRange  = NewOptKey("range", RangeValue{})
)

var (
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptHorizontalScroll    = NewOptKey("horizontalScroll", false)
	OptStickToBottom       = NewOptKey("stickToBottom", false)
	OptFocus               = NewOptKey("focus", FocusValue{})
)

var (
	OptDefaultOpen = NewOptKey("defaultOpen", false)
)

var (
	OptPlotYMin      = NewOptKey[float32]("plotYMin", 0)
	OptPlotYMax      = NewOptKey[float32]("plotYMax", 0)
	OptPlotGridLines = NewOptKey("plotGridLines", 0)
	OptPlotColor     = NewOptKey[uint32]("plotColor", 0)
)

// WithID sets an explicit ID string instead of deriving it from the label.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled greys the widget out and ignores input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// ForceFocus gives a text field the keyboard when it is drawn.
func ForceFocus() Option { return WithOpt(OptForceFocus, true) }

func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithHint shows greyed text in an empty text field.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

// WithFormat sets the fmt verb for slider values, e.g. "%.2f".
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

func WithStep(step float32) Option { return WithOpt(OptStep, step) }

func WithRange(minVal, maxVal float32) Option {
	return WithOpt(OptRange, RangeValue{Min: minVal, Max: maxVal, HasRange: true})
}

func ShowScrollbar(always bool) Option {
	if always {
		return WithOpt(OptScrollbarVisibility, ScrollbarAlways)
	}
	return WithOpt(OptScrollbarVisibility, ScrollbarAuto)
}

func HideScrollbar() Option { return WithOpt(OptScrollbarVisibility, ScrollbarNever) }

// EnableHorizontal adds horizontal scrolling to a Scrollable.
func EnableHorizontal() Option { return WithOpt(OptHorizontalScroll, true) }

// StickToBottom keeps a Scrollable scrolled to the end of its content while
// the user has not scrolled away from it.
func StickToBottom() Option { return WithOpt(OptStickToBottom, true) }

// FocusY scrolls so the content-relative y stays visible when it changes.
func FocusY(y float32, padding ...float32) Option {
	v := FocusValue{Y: y, Set: true}
	if len(padding) > 0 {
		v.Padding = padding[0]
	}
	return WithOpt(OptFocus, v)
}

// DefaultOpen starts a CollapsingHeader expanded.
func DefaultOpen() Option { return WithOpt(OptDefaultOpen, true) }

// WithPlotYRange fixes the plot's vertical axis instead of fitting the data.
func WithPlotYRange(minVal, maxVal float32) Option {
	return func(o *options) {
		WithOpt(OptPlotYMin, minVal)(o)
		WithOpt(OptPlotYMax, maxVal)(o)
	}
}

func WithPlotGridLines(n int) Option { return WithOpt(OptPlotGridLines, n) }

func WithPlotColor(color uint32) Option { return WithOpt(OptPlotColor, color) }
