package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// CoolingType is the battery's cooling mechanism; it selects the allowed temperature range.
type CoolingType int

const (
	PassiveCooling CoolingType = iota
	HiActiveCooling
	MedActiveCooling
)

// CoolingTypes lists every known cooling type in table order.
var CoolingTypes = []CoolingType{PassiveCooling, HiActiveCooling, MedActiveCooling}

var coolingTypeNames = map[CoolingType]string{
	PassiveCooling:   "PASSIVE_COOLING",
	HiActiveCooling:  "HI_ACTIVE_COOLING",
	MedActiveCooling: "MED_ACTIVE_COOLING",
}

// ErrUnknownCoolingType is returned when a cooling type name cannot be parsed.
var ErrUnknownCoolingType = errors.New("unknown cooling type")

// maxBrandLen mirrors the fixed brand buffer of the battery descriptor (48 bytes with terminator).
const maxBrandLen = 47

func (c CoolingType) Valid() bool {
	_, ok := coolingTypeNames[c]
	return ok
}

func (c CoolingType) String() string {
	if name, ok := coolingTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CoolingType(%d)", int(c))
}

// ParseCoolingType accepts "HI_ACTIVE_COOLING", "hi-active-cooling" or the short "hi_active".
func ParseCoolingType(s string) (CoolingType, error) {
	norm := normalizeName(s)
	for c, name := range coolingTypeNames {
		if norm == name || norm+"_COOLING" == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCoolingType, s)
}

func (c CoolingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either the name or the numeric value. Numbers are not
// range-checked here; the limit table rejects unknown values.
func (c *CoolingType) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*c = CoolingType(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("cooling type must be a string or number: %w", err)
	}
	parsed, err := ParseCoolingType(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TemperatureLimits is an inclusive range in °C.
type TemperatureLimits struct {
	LowerLimit float64 `json:"lower_limit_c"`
	UpperLimit float64 `json:"upper_limit_c"`
}

// BatteryCharacter describes the battery a reading belongs to.
type BatteryCharacter struct {
	CoolingType CoolingType `json:"cooling_type"`
	Brand       string      `json:"brand,omitempty"`
}

// NewBatteryCharacter builds a descriptor, truncating the brand to its bounded length.
func NewBatteryCharacter(coolingType CoolingType, brand string) BatteryCharacter {
	return BatteryCharacter{CoolingType: coolingType, Brand: truncateBrand(brand)}
}

func truncateBrand(brand string) string {
	if len(brand) <= maxBrandLen {
		return brand
	}
	// cut on a rune boundary
	cut := maxBrandLen
	for cut > 0 && !isRuneStart(brand[cut]) {
		cut--
	}
	return brand[:cut]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

func normalizeName(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
