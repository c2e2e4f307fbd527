package shipping

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Zone is a coarse shipping-distance tag derived from the ship-to address.
// It is advisory only: filtering and sorting may use it, document
// generation never depends on it.
type Zone struct {
	ID    string
	Name  string
	Rank  int // ascending sort priority, nearest first
	Miles *float64
}

// IsZero reports whether no zone could be derived at all.
func (z Zone) IsZero() bool {
	return z.ID == ""
}

// DisplayName returns the zone name for display, never empty.
func (z Zone) DisplayName() string {
	if z.Name == "" {
		return "Unknown"
	}
	return z.Name
}

// band is one ordered distance bucket.
type band struct {
	maxMiles float64
	id       string
	name     string
	rank     int
}

// bands are checked in order; the last entry is open-ended.
var bands = []band{
	{50, "local", "Local", 1},
	{499, "regional", "Regional", 2},
	{1000, "mid", "Mid Distance", 3},
	{math.MaxFloat64, "far", "Far", 4},
}

// defaultBandIndex is used when the address parses but no centroid
// resolves: the third band, a deliberately middle-of-the-road guess.
const defaultBandIndex = 2

// cityStateZipPattern matches the state code and 5-digit zip on a
// city/state/zip address line.
var cityStateZipPattern = regexp.MustCompile(`\b([A-Z]{2})[ ,]+(\d{5})(?:-\d{4})?\b`)

// Assigner derives shipping zones from ship-to address text using the
// distance-estimate policy: a coarse state-centroid lookup refined by
// zip-prefix ranges, great-circle distance from the warehouse origin,
// bucketed into four ordered bands.
type Assigner struct {
	originLat float64
	originLon float64
}

// NewAssigner creates an Assigner measuring from the fixed warehouse
// origin.
func NewAssigner() *Assigner {
	return &Assigner{originLat: originLat, originLon: originLon}
}

// Assign derives a zone from free-form ship-to address text. An empty
// address yields the zero Zone (rendered "Unknown"); a parseable address
// with no resolvable location falls back to the default band.
func (a *Assigner) Assign(shipTo string) Zone {
	state, zip, ok := parseCityStateZip(shipTo)
	if !ok {
		if strings.TrimSpace(shipTo) == "" {
			return Zone{}
		}
		return bandZone(defaultBandIndex, nil)
	}

	lat, lon, found := resolvePoint(state, zip)
	if !found {
		return bandZone(defaultBandIndex, nil)
	}

	miles := haversineMiles(a.originLat, a.originLon, lat, lon)
	for i, b := range bands {
		if miles <= b.maxMiles {
			return bandZone(i, &miles)
		}
	}
	// Unreachable: the last band is open-ended.
	return bandZone(len(bands)-1, &miles)
}

func bandZone(i int, miles *float64) Zone {
	b := bands[i]
	return Zone{ID: b.id, Name: b.name, Rank: b.rank, Miles: miles}
}

// RankOf returns the sort rank for a zone identifier; unknown or empty
// identifiers sort last.
func RankOf(zoneID string) int {
	for _, b := range bands {
		if b.id == zoneID {
			return b.rank
		}
	}
	return len(bands) + 1
}

// parseCityStateZip scans the address lines for the city/state/zip line,
// skipping any country line, and extracts the 2-letter state code and
// 5-digit zip.
func parseCityStateZip(shipTo string) (state, zip string, ok bool) {
	for _, line := range strings.Split(shipTo, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isCountryLine(line) {
			continue
		}
		if m := cityStateZipPattern.FindStringSubmatch(line); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

func isCountryLine(line string) bool {
	switch strings.ToUpper(strings.TrimRight(line, ". ")) {
	case "US", "USA", "UNITED STATES", "UNITED STATES OF AMERICA":
		return true
	}
	return false
}

// resolvePoint returns a coarse coordinate for the destination: a
// zip-prefix range when one covers the zip (split states), otherwise the
// state centroid.
func resolvePoint(state, zip string) (lat, lon float64, ok bool) {
	if prefix, err := strconv.Atoi(zip[:3]); err == nil {
		for _, r := range zipRanges {
			if prefix >= r.lo && prefix <= r.hi {
				return r.lat, r.lon, true
			}
		}
	}
	if c, found := stateCentroids[state]; found {
		return c.lat, c.lon, true
	}
	return 0, 0, false
}

// haversineMiles computes the great-circle distance between two points.
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMiles = 3958.8
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}
