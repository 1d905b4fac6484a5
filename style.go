package gui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by StyleByName for names it does not know.
var ErrUnknownStyle = errors.New("unknown style")

// Spacing scale for layout options.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // default item spacing
	SpaceMD   float32 = 8 // default padding
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
	Space2XL  float32 = 24
)

// Style defines the visual appearance of UI elements.
type Style struct {
	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32

	// Window is the full-display root panel.
	WindowColor uint32

	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32 // 0 = ButtonColor
	PanelHeaderTextColor uint32 // 0 = TextColor

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	PreeditColor        uint32 // IME composition text and underline

	SeparatorColor uint32
	BorderColor    uint32

	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	PlotBgColor   uint32
	PlotLineColor uint32
	PlotGridColor uint32

	FocusColor uint32

	FontName string // passed to FontProvider.SetActiveFont when set

	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32

	BorderSize    float32
	ScrollbarSize float32
}

// DefaultStyle is a dark theme close to the look of the stock demo.
func DefaultStyle() Style {
	return Style{
		TextColor:          RGBA(210, 210, 210, 255),
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,

		WindowColor:        RGBA(27, 27, 27, 255),
		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:         RGBA(60, 60, 60, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(0, 92, 128, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(10, 10, 10, 255),
		InputFocusedBgColor: RGBA(20, 20, 28, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),
		PreeditColor:        RGBA(255, 200, 90, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),
		BorderColor:    RGBA(80, 80, 80, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(0, 92, 128, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		PlotBgColor:   RGBA(15, 15, 15, 255),
		PlotLineColor: RGBA(100, 200, 100, 255),
		PlotGridColor: RGBA(50, 50, 50, 255),

		FocusColor: RGBA(0, 160, 220, 255),

		FontScale:     2,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,

		BorderSize:    1,
		ScrollbarSize: 12,
	}
}

// DarkStyle is DefaultStyle with a darker panel and blue selection.
func DarkStyle() Style {
	s := DefaultStyle()
	s.WindowColor = RGBA(12, 12, 12, 255)
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.PanelHeaderBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255)
	s.SliderFillColor = s.SelectedBgColor
	return s
}

func LightStyle() Style {
	s := DefaultStyle()

	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.TextHighlightColor = RGBA(0, 100, 200, 255)

	s.WindowColor = RGBA(248, 248, 248, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.PanelHeaderTextColor = RGBA(40, 40, 40, 255)

	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(230, 230, 230, 255)

	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)

	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)
	s.PreeditColor = RGBA(180, 90, 0, 255)

	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.BorderColor = RGBA(200, 200, 200, 255)

	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)

	s.SliderTrackColor = RGBA(220, 220, 220, 255)
	s.SliderFillColor = RGBA(0, 120, 215, 255)
	s.SliderGrabColor = RGBA(180, 180, 180, 255)
	s.SliderGrabHovered = RGBA(160, 160, 160, 255)
	s.SliderGrabActive = RGBA(140, 140, 140, 255)

	s.PlotBgColor = ColorWhite
	s.PlotLineColor = RGBA(0, 120, 60, 255)
	s.PlotGridColor = RGBA(220, 220, 220, 255)
	return s
}

// StyleNames lists the names StyleByName accepts.
var StyleNames = []string{"default", "dark", "light"}

// StyleByName returns the named preset. The empty name selects DefaultStyle.
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultStyle(), nil
	case "dark":
		return DarkStyle(), nil
	case "light":
		return LightStyle(), nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
