package router

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Settings configures travel and wait times of the routing graph.
type Settings struct {
	// BusVelocity is the bus speed in km/h.
	BusVelocity float64 `yaml:"bus_velocity" json:"bus_velocity" validate:"gt=0"`
	// BusWaitTime is the time in minutes spent waiting at a stop before boarding.
	BusWaitTime float64 `yaml:"bus_wait_time" json:"bus_wait_time" validate:"gte=0"`
}

// Validate reports ErrInvalidConfiguration for settings that cannot weight a graph.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

func (s Settings) metersPerMinute() float64 {
	return s.BusVelocity * 1000 / 60
}
