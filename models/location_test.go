package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationRoundTrip(t *testing.T) {
	for _, name := range ServedLocations() {
		code := CodeForLocation(name)
		assert.NotEqual(t, LocationCode(LocationNotFound), code, "served location %q must map to a code", name)
		assert.Equal(t, name, LocationName(code), "round trip must be lossless for %q", name)
	}
}

func TestCodeForLocationMapping(t *testing.T) {
	assert.Equal(t, LocationPortBlair, CodeForLocation("Port Blair"))
	assert.Equal(t, LocationHavelock, CodeForLocation("Havelock"))
	assert.Equal(t, LocationNeilIsland, CodeForLocation("Neil Island"))
}

func TestCodeForLocationUnmapped(t *testing.T) {
	assert.Equal(t, LocationCode(LocationNotFound), CodeForLocation("Atlantis"))
	assert.Equal(t, LocationCode(LocationNotFound), CodeForLocation(""))
	// Lookup is exact; lowercase display names are not recognized.
	assert.Equal(t, LocationCode(LocationNotFound), CodeForLocation("havelock"))
}

func TestLocationNameUnmapped(t *testing.T) {
	assert.Equal(t, LocationNotFound, LocationName(LocationCode("xx")))
}
