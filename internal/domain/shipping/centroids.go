package shipping

// Warehouse origin: Dallas, TX.
const (
	originLat = 32.7767
	originLon = -96.7970
)

type centroid struct {
	lat float64
	lon float64
}

// stateCentroids holds one coarse centroid per state. Good enough for
// band bucketing; never used for anything finer than a zone tag.
var stateCentroids = map[string]centroid{
	"AL": {32.806671, -86.791130},
	"AZ": {33.729759, -111.431221},
	"AR": {34.969704, -92.373123},
	"CA": {36.116203, -119.681564},
	"CO": {39.059811, -105.311104},
	"CT": {41.597782, -72.755371},
	"DE": {39.318523, -75.507141},
	"FL": {27.766279, -81.686783},
	"GA": {33.040619, -83.643074},
	"ID": {44.240459, -114.478828},
	"IL": {40.349457, -88.986137},
	"IN": {39.849426, -86.258278},
	"IA": {42.011539, -93.210526},
	"KS": {38.526600, -96.726486},
	"KY": {37.668140, -84.670067},
	"LA": {31.169546, -91.867805},
	"ME": {44.693947, -69.381927},
	"MD": {39.063946, -76.802101},
	"MA": {42.230171, -71.530106},
	"MI": {43.326618, -84.536095},
	"MN": {45.694454, -93.900192},
	"MS": {32.741646, -89.678696},
	"MO": {38.456085, -92.288368},
	"MT": {46.921925, -110.454353},
	"NE": {41.125370, -98.268082},
	"NV": {38.313515, -117.055374},
	"NH": {43.452492, -71.563896},
	"NJ": {40.298904, -74.521011},
	"NM": {34.840515, -106.248482},
	"NY": {42.165726, -74.948051},
	"NC": {35.630066, -79.806419},
	"ND": {47.528912, -99.784012},
	"OH": {40.388783, -82.764915},
	"OK": {35.565342, -96.928917},
	"OR": {44.572021, -122.070938},
	"PA": {40.590752, -77.209755},
	"RI": {41.680893, -71.511780},
	"SC": {33.856892, -80.945007},
	"SD": {44.299782, -99.438828},
	"TN": {35.747845, -86.692345},
	"TX": {31.054487, -97.563461},
	"UT": {40.150032, -111.862434},
	"VT": {44.045876, -72.710686},
	"VA": {37.769337, -78.169968},
	"WA": {47.400902, -121.490494},
	"WI": {44.268543, -89.616508},
	"WY": {42.755966, -107.302490},
}

// zipRange refines large split states where the centroid is too coarse:
// the 3-digit zip prefix picks a regional point instead.
type zipRange struct {
	lo, hi int // inclusive 3-digit prefix range
	lat    float64
	lon    float64
}

var zipRanges = []zipRange{
	// Texas: Dallas-Fort Worth metro vs the rest of the state
	{750, 753, 32.7767, -96.7970},
	{760, 762, 32.7555, -97.3308},
	{770, 775, 29.7604, -95.3698}, // Houston
	{780, 785, 29.4241, -98.4936}, // San Antonio / south TX
	{786, 789, 30.2672, -97.7431}, // Austin
	{799, 799, 31.7619, -106.4850}, // El Paso
	// California: north vs south
	{900, 935, 34.0522, -118.2437}, // Los Angeles / SoCal
	{936, 961, 37.7749, -122.4194}, // Bay Area / NorCal
	// Florida: panhandle vs peninsula
	{320, 326, 30.4383, -84.2807},
	{327, 349, 27.9506, -82.4572},
	// New York: city vs upstate
	{100, 119, 40.7128, -74.0060},
	{120, 149, 42.6526, -73.7562},
}
