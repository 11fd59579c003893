package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

const (
	TimeColumn          = "time"
	WindDirectionColumn = "_wcd"
	missingValueToken   = "-"
)

type ValueKind int

const (
	Absent ValueKind = iota
	Number
	Text
)

// Value is a single cell in a forecast table. Missing upstream values are Absent,
// never a numeric placeholder.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

func NumberValue(f float64) Value {
	return Value{Kind: Number, Num: f}
}

func TextValue(s string) Value {
	return Value{Kind: Text, Str: s}
}

func AbsentValue() Value {
	return Value{}
}

func (v Value) IsNumber() bool {
	return v.Kind == Number
}

func (v Value) IsAbsent() bool {
	return v.Kind == Absent
}

func (v Value) Float() (float64, bool) {
	return v.Num, v.Kind == Number
}

func (v Value) String() string {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case Text:
		return v.Str
	default:
		return missingValueToken
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Number:
		return json.Marshal(v.Num)
	case Text:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = AbsentValue()
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = NumberValue(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unsupported table value %s", string(b))
	}

	*v = TextValue(s)
	return nil
}

var leadingDigit = regexp.MustCompile(`^\d`)

// ParseValue turns one whitespace separated token from a forecast payload into a
// cell. Tokens starting with a digit are numbers, "-" is absent and anything else
// is kept verbatim.
func ParseValue(token string) Value {
	if token == missingValueToken {
		return AbsentValue()
	}

	if leadingDigit.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return NumberValue(f)
		}
	}

	return TextValue(token)
}

// ForecastTable holds one row per forecast time step. Parameter columns are kept in
// the order they were discovered in the payload.
type ForecastTable struct {
	time    []string
	columns map[string][]Value
	order   []string
}

func NewForecastTable(timeSteps []string) *ForecastTable {
	t := make([]string, len(timeSteps))
	copy(t, timeSteps)

	return &ForecastTable{
		time:    t,
		columns: map[string][]Value{},
	}
}

func (t *ForecastTable) Len() int {
	return len(t.time)
}

func (t *ForecastTable) Time() []string {
	return t.time
}

// Set adds or replaces a column. A replaced column keeps its original position.
func (t *ForecastTable) Set(name string, values []Value) error {
	if name == TimeColumn {
		return fmt.Errorf("column name %q is reserved", TimeColumn)
	}

	if len(values) != len(t.time) {
		return fmt.Errorf("column %s has %d values but the table has %d rows", name, len(values), len(t.time))
	}

	if _, exists := t.columns[name]; !exists {
		t.order = append(t.order, name)
	}

	t.columns[name] = values
	return nil
}

func (t *ForecastTable) Column(name string) ([]Value, bool) {
	c, ok := t.columns[name]
	return c, ok
}

// Columns lists the value columns, excluding the time axis
func (t *ForecastTable) Columns() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Row returns every column of row i keyed by column name, including the time axis
func (t *ForecastTable) Row(i int) map[string]Value {
	row := map[string]Value{TimeColumn: TextValue(t.time[i])}
	for _, name := range t.order {
		row[name] = t.columns[name][i]
	}
	return row
}

// Apply replaces every numeric cell of a column with fn(cell). Other cells are left as they are.
func (t *ForecastTable) Apply(name string, fn func(float64) float64) bool {
	column, ok := t.columns[name]
	if !ok {
		return false
	}

	for i, v := range column {
		if v.IsNumber() {
			column[i] = NumberValue(fn(v.Num))
		}
	}

	return true
}

// MarshalJSON writes the table column wise, preserving column order
func (t *ForecastTable) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")

	timeJSON, err := json.Marshal(t.time)
	if err != nil {
		return nil, err
	}

	buf.WriteString(`"` + TimeColumn + `":`)
	buf.Write(timeJSON)

	for _, name := range t.order {
		key, _ := json.Marshal(name)
		values, err := json.Marshal(t.columns[name])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal column %s: %w", name, err)
		}

		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(values)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
