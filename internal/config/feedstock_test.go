package config

import "testing"

func TestCatalogFixedEntries(t *testing.T) {
	want := map[string]float64{
		"cattle":  0.03,
		"poultry": 0.06,
		"food":    0.09,
		"mixed":   0.05,
	}

	if len(Catalog) != len(want) {
		t.Fatalf("Catalog has %d entries, want %d", len(Catalog), len(want))
	}
	for _, p := range Catalog {
		yield, ok := want[p.Key]
		if !ok {
			t.Errorf("unexpected catalog key %q", p.Key)
			continue
		}
		if p.YieldM3PerKg != yield {
			t.Errorf("%s: YieldM3PerKg = %v, want %v", p.Key, p.YieldM3PerKg, yield)
		}
		if p.Label == "" {
			t.Errorf("%s: empty label", p.Key)
		}
	}
}

func TestLookupFeedstock(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"poultry", "poultry"},
		{"  Food ", "food"},
		{"CATTLE", "cattle"},
		{"algae", Catalog[0].Key}, // unknown key falls back to first entry
		{"", Catalog[0].Key},
	}

	for _, tc := range cases {
		if got := LookupFeedstock(tc.key); got.Key != tc.want {
			t.Errorf("LookupFeedstock(%q).Key = %q, want %q", tc.key, got.Key, tc.want)
		}
	}
}

func TestIsFeedstockKey(t *testing.T) {
	if !IsFeedstockKey("mixed") {
		t.Error("IsFeedstockKey(mixed) = false, want true")
	}
	if IsFeedstockKey("plastic") {
		t.Error("IsFeedstockKey(plastic) = true, want false")
	}
}

func TestFeedstockKeysOrder(t *testing.T) {
	keys := FeedstockKeys()
	if len(keys) != len(Catalog) {
		t.Fatalf("FeedstockKeys len = %d, want %d", len(keys), len(Catalog))
	}
	for i, k := range keys {
		if k != Catalog[i].Key {
			t.Errorf("keys[%d] = %q, want %q", i, k, Catalog[i].Key)
		}
	}
}
