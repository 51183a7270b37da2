package service

import (
	"fmt"

	"typewise_alert/internal/models"
)

// coolingLimits is read-only after package init.
var coolingLimits = map[models.CoolingType]models.TemperatureLimits{
	models.PassiveCooling:   {LowerLimit: 0, UpperLimit: 35},
	models.HiActiveCooling:  {LowerLimit: 0, UpperLimit: 45},
	models.MedActiveCooling: {LowerLimit: 0, UpperLimit: 40},
}

// LimitEntry pairs a cooling type with its range.
type LimitEntry struct {
	CoolingType models.CoolingType       `json:"cooling_type"`
	Limits      models.TemperatureLimits `json:"limits"`
}

// GetLimits returns the allowed range for coolingType.
func GetLimits(coolingType models.CoolingType) (models.TemperatureLimits, error) {
	limits, ok := coolingLimits[coolingType]
	if !ok {
		return models.TemperatureLimits{}, fmt.Errorf("%w: %d", ErrInvalidCoolingType, int(coolingType))
	}
	return limits, nil
}

// LimitService exposes the static limit table.
type LimitService struct{}

func NewLimitService() *LimitService { return &LimitService{} }

func (s *LimitService) GetLimits(coolingType models.CoolingType) (models.TemperatureLimits, error) {
	return GetLimits(coolingType)
}

// Table lists every entry in cooling-type order.
func (s *LimitService) Table() []LimitEntry {
	out := make([]LimitEntry, 0, len(models.CoolingTypes))
	for _, c := range models.CoolingTypes {
		out = append(out, LimitEntry{CoolingType: c, Limits: coolingLimits[c]})
	}
	return out
}
