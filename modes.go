package daikinhttp

import (
	"fmt"
	"strconv"
)

// Operating modes as reported in the "mode" field.
const (
	ModeAuto  = 0
	ModeAuto1 = 1
	ModeDry   = 2
	ModeCool  = 3
	ModeHeat  = 4
	ModeFan   = 6
	ModeAuto7 = 7
)

// Translations between Daikin wire values and human-readable names.
var translations = map[string]map[string]string{
	"mode": {
		"2": "dry",
		"3": "cool",
		"4": "hot",
		"6": "fan",
		"0": "auto",
		"1": "auto-1",
		"7": "auto-7",
	},
	"f_rate": {
		"A": "auto",
		"B": "silence",
		"3": "1",
		"4": "2",
		"5": "3",
		"6": "4",
		"7": "5",
	},
	"f_dir": {
		"0": "off",
		"1": "vertical",
		"2": "horizontal",
		"3": "3d",
	},
}

func translateValue(dimension, value string) string {
	if names, exists := translations[dimension]; exists {
		if name, exists := names[value]; exists {
			return name
		}
	}
	return value
}

func reverseTranslateValue(dimension, value string) string {
	if names, exists := translations[dimension]; exists {
		for daikinValue, name := range names {
			if name == value {
				return daikinValue
			}
		}
	}
	return value
}

// ModeName returns the readable name of mode, or its number if unknown.
func ModeName(mode int) string {
	return translateValue("mode", strconv.Itoa(mode))
}

// ParseMode accepts a mode name ("cool") or number ("3").
func ParseMode(s string) (int, error) {
	mode, err := strconv.Atoi(reverseTranslateValue("mode", s))
	if err != nil {
		return 0, fmt.Errorf("unknown mode %q", s)
	}
	return mode, nil
}

func FanRateName(rate string) string {
	return translateValue("f_rate", rate)
}

// ParseFanRate maps a fan rate name to its wire value. Unknown names pass through.
func ParseFanRate(s string) string {
	return reverseTranslateValue("f_rate", s)
}

func FanDirName(dir string) string {
	return translateValue("f_dir", dir)
}

func ParseFanDir(s string) string {
	return reverseTranslateValue("f_dir", s)
}

// Describe returns a one-line human summary, e.g. "cool 24.0°C fan auto".
func (c ControlInfo) Describe() string {
	if !c.Power {
		return "off"
	}
	s := ModeName(c.Mode)
	if c.TargetTemp != nil {
		s += fmt.Sprintf(" %.1f°C", *c.TargetTemp)
	}
	if c.FanRate != "" {
		s += " fan " + FanRateName(c.FanRate)
	}
	if c.FanDir != "" {
		s += " swing " + FanDirName(c.FanDir)
	}
	return s
}
