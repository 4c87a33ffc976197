package budget

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RoomRates tarifas por pie cuadrado de un tipo de ambiente.
type RoomRates struct {
	BaseRate       decimal.Decimal // obra y acabados base
	LaborRate      decimal.Decimal // mano de obra
	TimeMultiplier decimal.Decimal // factor sobre la estimación de días (1 = sin ajuste)
}

// RateTable única tabla de configuración del calculador de presupuesto.
type RateTable struct {
	Rooms         map[string]RoomRates
	Default       RoomRates
	Grades        map[string]decimal.Decimal // multiplicador del costo base por calidad de material
	DefaultGrade  string
	DesignFeeRate decimal.Decimal // proporción del costo base
	SurchargeRate decimal.Decimal // recargo cuando hay requerimientos adicionales
}

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// DefaultRateTable tarifas por defecto (USD por pie cuadrado).
func DefaultRateTable() RateTable {
	one := decimal.NewFromInt(1)
	slow := d(1.5)
	return RateTable{
		Rooms: map[string]RoomRates{
			"KITCHEN":     {BaseRate: d(70), LaborRate: d(20), TimeMultiplier: slow},
			"BATHROOM":    {BaseRate: d(80), LaborRate: d(25), TimeMultiplier: slow},
			"BEDROOM":     {BaseRate: d(40), LaborRate: d(12), TimeMultiplier: one},
			"LIVING_ROOM": {BaseRate: d(50), LaborRate: d(15), TimeMultiplier: one},
			"DINING_ROOM": {BaseRate: d(45), LaborRate: d(15), TimeMultiplier: one},
			"OFFICE":      {BaseRate: d(45), LaborRate: d(14), TimeMultiplier: one},
		},
		Default: RoomRates{BaseRate: d(45), LaborRate: d(15), TimeMultiplier: one},
		Grades: map[string]decimal.Decimal{
			"STANDARD": one,
			"PREMIUM":  d(1.5),
			"LUXURY":   d(2.25),
		},
		DefaultGrade:  "STANDARD",
		DesignFeeRate: d(0.15),
		SurchargeRate: d(0.05),
	}
}

// NormalizeKey pasa "living room" / "Living-Room" a "LIVING_ROOM".
func NormalizeKey(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

// Room devuelve las tarifas del ambiente (sin distinguir mayúsculas) o las de por defecto.
func (t RateTable) Room(roomType string) RoomRates {
	if r, ok := t.Rooms[NormalizeKey(roomType)]; ok {
		return r
	}
	return t.Default
}

// RoomTypes lista ordenada de ambientes configurados.
func (t RateTable) RoomTypes() []string {
	out := make([]string, 0, len(t.Rooms))
	for k := range t.Rooms {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// GradeNames lista ordenada de calidades de material configuradas.
func (t RateTable) GradeNames() []string {
	out := make([]string, 0, len(t.Grades))
	for k := range t.Grades {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RateFile forma del archivo de tarifas (YAML/JSON) leído con Viper.
type RateFile struct {
	Rooms         map[string]RoomRateFile `mapstructure:"rooms"`
	Default       *RoomRateFile           `mapstructure:"default"`
	Grades        map[string]float64      `mapstructure:"grades"`
	DesignFeeRate *float64                `mapstructure:"design_fee_rate"`
	SurchargeRate *float64                `mapstructure:"surcharge_rate"`
}

// RoomRateFile tarifas de un ambiente en el archivo.
type RoomRateFile struct {
	BaseRate       float64 `mapstructure:"base_rate"`
	LaborRate      float64 `mapstructure:"labor_rate"`
	TimeMultiplier float64 `mapstructure:"time_multiplier"`
}

func (f RoomRateFile) toRates() RoomRates {
	tm := f.TimeMultiplier
	if tm <= 0 {
		tm = 1
	}
	return RoomRates{BaseRate: d(f.BaseRate), LaborRate: d(f.LaborRate), TimeMultiplier: d(tm)}
}

// Merge aplica el archivo sobre base: lo que el archivo define reemplaza al valor por defecto.
func (f RateFile) Merge(base RateTable) RateTable {
	out := base
	out.Rooms = make(map[string]RoomRates, len(base.Rooms)+len(f.Rooms))
	for k, v := range base.Rooms {
		out.Rooms[k] = v
	}
	for k, v := range f.Rooms {
		out.Rooms[NormalizeKey(k)] = v.toRates()
	}
	if f.Default != nil {
		out.Default = f.Default.toRates()
	}
	out.Grades = make(map[string]decimal.Decimal, len(base.Grades)+len(f.Grades))
	for k, v := range base.Grades {
		out.Grades[k] = v
	}
	for k, v := range f.Grades {
		out.Grades[NormalizeKey(k)] = d(v)
	}
	if f.DesignFeeRate != nil {
		out.DesignFeeRate = d(*f.DesignFeeRate)
	}
	if f.SurchargeRate != nil {
		out.SurchargeRate = d(*f.SurchargeRate)
	}
	return out
}
