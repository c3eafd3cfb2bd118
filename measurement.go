package dadosbr

import (
	"fmt"
	"strings"
)

// MeasurementType is the kind of hydrological reading published by ANA.
type MeasurementType string

const (
	Flow       MeasurementType = "vazao" // river discharge
	Rainfall   MeasurementType = "chuva" // precipitation
	GaugeLevel MeasurementType = "cota"  // water level at the gauge
)

// MeasurementTypes lists the products of the ANA service, in catalog order.
var MeasurementTypes = []MeasurementType{Flow, Rainfall, GaugeLevel}

var measurementAliases = map[string]MeasurementType{
	"vazao":       Flow,
	"vazão":       Flow,
	"flow":        Flow,
	"chuva":       Rainfall,
	"rainfall":    Rainfall,
	"rain":        Rainfall,
	"cota":        GaugeLevel,
	"gauge":       GaugeLevel,
	"level":       GaugeLevel,
	"gauge-level": GaugeLevel,
}

// ParseMeasurementType parses a measurement type from its Portuguese name or an English
// alias, case-insensitive.
func ParseMeasurementType(s string) (MeasurementType, error) {
	if s == "" {
		return "", fmt.Errorf("%w: a measurement type is required ('vazao', 'chuva' or 'cota')", ErrInvalidArgument)
	}
	m, ok := measurementAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unknown measurement type %q, use 'vazao', 'chuva' or 'cota'", ErrInvalidArgument, s)
	}
	return m, nil
}

func (m MeasurementType) String() string { return string(m) }
