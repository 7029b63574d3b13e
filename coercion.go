package daikinhttp

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects how a raw wire field is typed.
type Kind int

const (
	KindDefault Kind = iota
	KindInt
	KindTemperature
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindTemperature:
		return "temperature"
	case KindBool:
		return "bool"
	default:
		return "default"
	}
}

// TemperatureSentinel is written for a temperature that has no value.
const TemperatureSentinel = "-"

type coercion struct {
	parse  func(raw string) any
	format func(v any) string
}

// Indexed by Kind. Never written after init.
var coercions = [...]coercion{
	KindDefault:     {parse: func(raw string) any { return raw }, format: formatDefault},
	KindInt:         {parse: func(raw string) any { return ParseInt(raw) }, format: formatIntValue},
	KindTemperature: {parse: func(raw string) any { return ParseTemperature(raw) }, format: formatTemperatureValue},
	KindBool:        {parse: func(raw string) any { return ParseBool(raw) }, format: formatBoolValue},
}

func coercionFor(kind Kind) coercion {
	if kind < 0 || int(kind) >= len(coercions) {
		return coercions[KindDefault]
	}
	return coercions[kind]
}

// Parse converts a raw wire value to the Go type of kind. It never fails.
func Parse(kind Kind, raw string) any {
	return coercionFor(kind).parse(raw)
}

// Format converts a typed value (or a value already in wire form) back to its wire string.
func Format(kind Kind, v any) string {
	return coercionFor(kind).format(v)
}

// ParseInt returns 0 for missing or non-numeric input.
func ParseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// ParseTemperature returns nil for the "-" and "--" sentinels, empty input and junk.
func ParseTemperature(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", "-", "--":
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func FormatTemperature(t *float64) string {
	if t == nil {
		return TemperatureSentinel
	}
	return strconv.FormatFloat(*t, 'f', 1, 64)
}

func ParseBool(raw string) bool {
	return raw == "1" || raw == "true"
}

func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Float returns a pointer to v, for building nullable temperatures.
func Float(v float64) *float64 {
	return &v
}

func formatDefault(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func formatIntValue(v any) string {
	switch x := v.(type) {
	case int:
		return FormatInt(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return x
	case nil:
		return FormatInt(0)
	default:
		return fmt.Sprint(x)
	}
}

func formatTemperatureValue(v any) string {
	switch x := v.(type) {
	case *float64:
		return FormatTemperature(x)
	case float64:
		return FormatTemperature(&x)
	case int:
		f := float64(x)
		return FormatTemperature(&f)
	case string:
		return x
	default:
		return TemperatureSentinel
	}
}

func formatBoolValue(v any) string {
	switch x := v.(type) {
	case bool:
		return FormatBool(x)
	case string:
		return FormatBool(ParseBool(x))
	default:
		return FormatBool(false)
	}
}
