package ana

import (
	"fmt"

	"github.com/dadosbr/dadosbr"
)

// DataType is the tipoDados code of the historical-series endpoint.
type DataType string

const (
	GaugeLevelData DataType = "1"
	RainfallData   DataType = "2"
	FlowData       DataType = "3"
)

// fieldTemplates name the per-day fields of a monthly record, formatted with the
// 1-based day of the month.
var fieldTemplates = map[DataType]string{
	GaugeLevelData: "Cota%02d",
	RainfallData:   "Chuva%02d",
	FlowData:       "Vazao%02d",
}

// The inventory and the historical series do not number measurement types the same
// way, flow is "1" for the former and "3" for the latter. Both tables mirror the live
// service and must not be unified.
var (
	stationTypes = map[dadosbr.MeasurementType]string{
		dadosbr.Flow:       "1",
		dadosbr.Rainfall:   "2",
		dadosbr.GaugeLevel: "3",
	}
	dataTypes = map[dadosbr.MeasurementType]DataType{
		dadosbr.Flow:       FlowData,
		dadosbr.Rainfall:   RainfallData,
		dadosbr.GaugeLevel: GaugeLevelData,
	}
)

// ParseDataType validates a raw tipoDados code.
func ParseDataType(code string) (DataType, error) {
	dt := DataType(code)
	if _, ok := fieldTemplates[dt]; !ok {
		return "", fmt.Errorf("%w: unknown data type %q", dadosbr.ErrInvalidArgument, code)
	}
	return dt, nil
}

// Field returns the name of the field holding the given day of the month.
func (dt DataType) Field(day int) string { return fmt.Sprintf(fieldTemplates[dt], day) }

// StationTypeFor returns the tpEst code used by the inventory for a measurement type.
func StationTypeFor(m dadosbr.MeasurementType) (string, error) {
	code, ok := stationTypes[m]
	if !ok {
		return "", fmt.Errorf("%w: unknown measurement type %q", dadosbr.ErrInvalidArgument, m)
	}
	return code, nil
}

// DataTypeFor returns the tipoDados code used by the historical series for a
// measurement type.
func DataTypeFor(m dadosbr.MeasurementType) (DataType, error) {
	dt, ok := dataTypes[m]
	if !ok {
		return "", fmt.Errorf("%w: unknown measurement type %q", dadosbr.ErrInvalidArgument, m)
	}
	return dt, nil
}
