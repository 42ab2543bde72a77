package wizard

import (
	"testing"

	"trabby/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(from, to, departure string) map[string]interface{} {
	return map[string]interface{}{"from": from, "to": to, "departure": departure}
}

func TestParseLegsAbsentOrEmpty(t *testing.T) {
	assert.Empty(t, ParseLegs(nil))
	assert.Empty(t, ParseLegs([]interface{}{}))
	assert.Empty(t, ParseLegs("not a sequence"))
	assert.Empty(t, ParseLegs(map[string]interface{}{"from": "Havelock"}))
}

func TestParseLegsTrimsFields(t *testing.T) {
	legs := ParseLegs([]interface{}{section("  Port Blair ", "Havelock\t", " 2024-05-01 ")})
	require.Len(t, legs, 1)
	assert.Equal(t, models.Leg{From: "Port Blair", To: "Havelock", Departure: "2024-05-01"}, legs[0])
}

func TestParseLegsDropsInvalidElements(t *testing.T) {
	raw := []interface{}{
		section("Port Blair", "Havelock", "2024-05-01"),
		section("", "Neil Island", "2024-05-02"),             // missing from
		section("Havelock", "   ", "2024-05-02"),             // whitespace-only to
		section("Havelock", "Neil Island", ""),               // missing departure
		"garbage",                                            // not an object
		section("Havelock", "Neil Island", "2024-05-03"),
	}

	legs := ParseLegs(raw)
	require.Len(t, legs, 2)
	// Ordering follows input ordering.
	assert.Equal(t, "Port Blair", legs[0].From)
	assert.Equal(t, "Neil Island", legs[1].To)
}

func TestParseLegsOutputNeverLongerThanInput(t *testing.T) {
	inputs := [][]interface{}{
		nil,
		{},
		{section("a", "b", "c")},
		{section("a", "b", "c"), section("", "", "")},
		{nil, nil, nil},
	}
	for _, raw := range inputs {
		legs := ParseLegs(raw)
		assert.LessOrEqual(t, len(legs), len(raw))
		for _, leg := range legs {
			assert.NotEmpty(t, leg.From)
			assert.NotEmpty(t, leg.To)
			assert.NotEmpty(t, leg.Departure)
		}
	}
}
