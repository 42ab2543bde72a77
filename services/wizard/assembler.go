package wizard

import "trabby/models"

// AssemblePayload validates that every leg slot is resolved and composes the
// final booking submission for the contact-details stage. The payload is
// built once, at wizard completion, and never mutated afterward.
func AssemblePayload(st models.WizardState, adults, children int) (models.BookingPayload, error) {
	if len(st.Legs) == 0 || len(st.Selections) != len(st.Legs) {
		return models.BookingPayload{}, ErrIncompleteSelections
	}

	ferries := make([]models.SelectedFerry, 0, len(st.Selections))
	for _, sel := range st.Selections {
		if sel == nil {
			return models.BookingPayload{}, ErrIncompleteSelections
		}
		ferries = append(ferries, *sel)
	}

	if adults < 1 {
		return models.BookingPayload{}, ErrNoAdults
	}

	return models.BookingPayload{
		SelectedFerries: ferries,
		Adults:          adults,
		Children:        children,
	}, nil
}
