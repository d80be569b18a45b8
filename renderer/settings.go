package renderer

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// ErrInvalidSettings is returned for negative sizes or offsets that cannot be drawn.
var ErrInvalidSettings = errors.New("renderer: invalid render settings")

var validate = validator.New()

// Settings controls the canvas and the look of the map.
type Settings struct {
	Width             float64   `validate:"gte=0"`
	Height            float64   `validate:"gte=0"`
	Padding           float64   `validate:"gte=0"`
	LineWidth         float64   `validate:"gte=0"`
	StopRadius        float64   `validate:"gte=0"`
	BusLabelFontSize  uint32    `validate:"gte=0"`
	BusLabelOffset    svg.Point `validate:"-"`
	StopLabelFontSize uint32    `validate:"gte=0"`
	StopLabelOffset   svg.Point `validate:"-"`
	UnderlayerColor   svg.Color `validate:"-"`
	UnderlayerWidth   float64   `validate:"gte=0"`
	ColorPalette      []svg.Color
}

// Validate reports ErrInvalidSettings when a size is negative or the
// padding leaves no room to draw.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if 2*s.Padding > s.Width || 2*s.Padding > s.Height {
		return fmt.Errorf("%w: padding %g does not fit a %gx%g canvas", ErrInvalidSettings, s.Padding, s.Width, s.Height)
	}
	return nil
}

// DefaultUnderlayerColor is used when the settings leave the underlayer color unset.
var DefaultUnderlayerColor = svg.RGBA(255, 255, 255, 0.85)
