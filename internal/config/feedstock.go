package config

import "strings"

// FeedstockProfile describes one feedstock category in the static catalog.
type FeedstockProfile struct {
	Key          string
	Label        string
	YieldM3PerKg float64 // m³ of biogas per kg of feedstock per day
	Description  string
}

// Catalog is the fixed feedstock catalog, ordered for display.
// The first entry doubles as the fallback for unknown keys.
var Catalog = []FeedstockProfile{
	{
		Key:          "cattle",
		Label:        "Cattle manure",
		YieldM3PerKg: 0.03,
		Description:  "The most common feedstock for farm digesters. Steady gas output, available year-round.",
	},
	{
		Key:          "poultry",
		Label:        "Poultry manure",
		YieldM3PerKg: 0.06,
		Description:  "High nitrogen content gives roughly double the yield of cattle manure.",
	},
	{
		Key:          "food",
		Label:        "Food waste",
		YieldM3PerKg: 0.09,
		Description:  "Highest yield per kilogram. Canteens, markets and processing plants are typical sources.",
	},
	{
		Key:          "mixed",
		Label:        "Mixed organic",
		YieldM3PerKg: 0.05,
		Description:  "Blend of manure, crop residue and household organics. A safe planning default.",
	},
}

// LookupFeedstock resolves a catalog entry by key. Unknown or empty keys
// fall back to the first catalog entry rather than failing.
func LookupFeedstock(key string) FeedstockProfile {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, p := range Catalog {
		if p.Key == normalized {
			return p
		}
	}
	return Catalog[0]
}

// FeedstockKeys returns all catalog keys in display order.
func FeedstockKeys() []string {
	keys := make([]string, len(Catalog))
	for i, p := range Catalog {
		keys[i] = p.Key
	}
	return keys
}

// IsFeedstockKey reports whether key resolves to a catalog entry without
// hitting the fallback.
func IsFeedstockKey(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, p := range Catalog {
		if p.Key == normalized {
			return true
		}
	}
	return false
}
