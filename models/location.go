package models

// LocationCode is the short route code the upstream ferry catalog uses
// for islands in the Andamans.
type LocationCode string

const (
	LocationPortBlair  LocationCode = "pb"
	LocationHavelock   LocationCode = "hl"
	LocationNeilIsland LocationCode = "nl"
)

// LocationNotFound is returned for names or codes outside the served network.
const LocationNotFound = "Not Found"

var locationCodes = map[string]LocationCode{
	"Port Blair":  LocationPortBlair,
	"Havelock":    LocationHavelock,
	"Neil Island": LocationNeilIsland,
}

var locationNames = map[LocationCode]string{
	LocationPortBlair:  "Port Blair",
	LocationHavelock:   "Havelock",
	LocationNeilIsland: "Neil Island",
}

// CodeForLocation maps a display name to its catalog code.
// Unknown names yield the LocationNotFound sentinel rather than an error.
func CodeForLocation(name string) LocationCode {
	if code, ok := locationCodes[name]; ok {
		return code
	}
	return LocationCode(LocationNotFound)
}

// LocationName is the reverse mapping from catalog code to display name.
func LocationName(code LocationCode) string {
	if name, ok := locationNames[code]; ok {
		return name
	}
	return LocationNotFound
}

// ServedLocations lists the display names of all locations on the network.
func ServedLocations() []string {
	return []string{"Port Blair", "Havelock", "Neil Island"}
}
