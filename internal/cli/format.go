// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatSom formats a so'm amount with spaced thousands groups,
// e.g. 1458000 -> "1 458 000 so'm".
func FormatSom(v float64) string {
	return groupDigits(int64(math.Round(v))) + " so'm"
}

// FormatSomShort formats a so'm amount with a magnitude suffix for
// chart axes and cards. e.g. 21600000 -> "21.6M".
func FormatSomShort(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return trimZero(fmt.Sprintf("%.1fB", v/1_000_000_000))
	case abs >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1fM", v/1_000_000))
	case abs >= 1_000:
		return trimZero(fmt.Sprintf("%.1fk", v/1_000))
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatVolume formats a daily biogas volume.
func FormatVolume(m3 float64) string {
	return fmt.Sprintf("%.1f m³", m3)
}

// FormatEnergy formats a daily energy figure.
func FormatEnergy(kwh float64) string {
	return fmt.Sprintf("%.1f kWh", kwh)
}

// FormatMass formats a daily feedstock mass.
func FormatMass(kg float64) string {
	return groupDigits(int64(math.Round(kg))) + " kg"
}

// FormatCO2 formats a daily CO2 reduction.
func FormatCO2(kg float64) string {
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatPayback formats an optional payback period. A nil value renders
// as the explicit absent marker rather than infinity.
func FormatPayback(months *float64) string {
	if months == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f months", *months)
}

// FormatYield formats a catalog yield factor.
func FormatYield(m3PerKg float64) string {
	return fmt.Sprintf("%.2f m³/kg", m3PerKg)
}

// ParseAmount coerces free-form numeric input to a non-negative float.
// Anything unparsable or negative degrades to zero, matching the
// estimator's permissive-input contract.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatFloat renders a float without trailing zeros, for flag defaults
// and editable input fields.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupDigits renders n with space-separated thousands groups,
// e.g. 9821 -> "9 821".
func groupDigits(n int64) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(' ')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

func trimZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}
