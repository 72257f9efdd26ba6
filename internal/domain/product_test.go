package domain

import "testing"

func TestParseCondition(t *testing.T) {
	for _, valid := range []string{"new", "used", "refurbished"} {
		if _, ok := ParseCondition(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"", "New", "mint", "second-hand"} {
		if _, ok := ParseCondition(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestProductFilterMatches(t *testing.T) {
	product := &Product{Name: "Samsung Galaxy A24", Category: "Phones"}

	cases := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{"empty filter matches", ProductFilter{}, true},
		{"query is case insensitive", ProductFilter{Query: "galaxy"}, true},
		{"query substring in middle", ProductFilter{Query: "AXY a2"}, true},
		{"query misses", ProductFilter{Query: "iphone"}, false},
		{"category equality", ProductFilter{Category: "Phones"}, true},
		{"category is exact", ProductFilter{Category: "phones"}, false},
		{"both must hold", ProductFilter{Query: "galaxy", Category: "Laptops"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(product); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}
