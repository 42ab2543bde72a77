package wizard

import (
	"strings"

	"trabby/models"
	"trabby/utils"

	"go.uber.org/zap"
)

// ParseLegs validates the raw "sections" value relayed from the search form.
// An absent value, a non-sequence, or an empty sequence all yield no legs.
// Elements missing any of from/to/departure are dropped with a warning
// instead of failing the whole batch; output order follows input order.
func ParseLegs(raw interface{}) []models.Leg {
	logger := utils.GetLogger()

	sections, ok := raw.([]interface{})
	if !ok || len(sections) == 0 {
		return nil
	}

	legs := make([]models.Leg, 0, len(sections))
	for i, item := range sections {
		section, ok := item.(map[string]interface{})
		if !ok {
			logger.Warn("Dropping malformed journey section", zap.Int("index", i))
			continue
		}
		from := trimmedField(section, "from")
		to := trimmedField(section, "to")
		departure := trimmedField(section, "departure")
		if from == "" || to == "" || departure == "" {
			logger.Warn("Missing parameter in journey section", zap.Int("index", i))
			continue
		}
		legs = append(legs, models.Leg{From: from, To: to, Departure: departure})
	}
	return legs
}

func trimmedField(section map[string]interface{}, key string) string {
	s, _ := section[key].(string)
	return strings.TrimSpace(s)
}
