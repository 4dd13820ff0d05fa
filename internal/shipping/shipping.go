package shipping

import (
	"slices"
	"sort"
)

const (
	DeliveryHome        = "home"
	DeliveryPickupPoint = "pickup-point"
)

// Quote returns the shipping fee for the given region and delivery type.
// Unknown region or delivery type quotes 0; a missing table entry is treated
// as a configuration gap, not a user error.
func Quote(region, deliveryType string) int {
	switch deliveryType {
	case DeliveryHome:
		return homeRates[region]
	case DeliveryPickupPoint:
		return pickupPointRates[region]
	}

	return 0
}

// KnownRegion reports whether the region appears in the static dataset.
func KnownRegion(region string) bool {
	_, ok := localities[region]

	return ok
}

// Regions returns all region keys in ascending order. The keys carry their
// administrative number prefix, so lexical order is the official one.
func Regions() []string {
	regions := make([]string, 0, len(localities))
	for region := range localities {
		regions = append(regions, region)
	}

	sort.Strings(regions)

	return regions
}

// Localities returns the communes of a region, or nil for an unknown region.
func Localities(region string) []string {
	locs, ok := localities[region]
	if !ok {
		return nil
	}

	return slices.Clone(locs)
}

// ValidLocality reports whether the locality belongs to the given region.
func ValidLocality(region, locality string) bool {
	return slices.Contains(localities[region], locality)
}
