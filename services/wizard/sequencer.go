package wizard

import "trabby/models"

// NewState builds the initial wizard state for the parsed legs: step 0,
// one empty selection slot per leg.
func NewState(legs []models.Leg) models.WizardState {
	return models.WizardState{
		Legs:       legs,
		Selections: make([]*models.SelectedFerry, len(legs)),
	}
}

// CommitSelection writes the resolved selection into the current step's slot,
// replacing any previous choice, and advances to the next step unless the
// wizard is already on the final leg.
func CommitSelection(st *models.WizardState, selected models.SelectedFerry) {
	st.Selections[st.CurrentStep] = &selected
	if st.CurrentStep < len(st.Legs)-1 {
		st.CurrentStep++
	}
}

// Advance moves forward one step. It reports false and leaves the state
// untouched when the current slot is still empty or the wizard already sits
// on the final step.
func Advance(st *models.WizardState) bool {
	if st.CurrentStep >= len(st.Legs)-1 {
		return false
	}
	if st.Selections[st.CurrentStep] == nil {
		return false
	}
	st.CurrentStep++
	return true
}

// Retreat steps back one leg. Prior selections are preserved.
func Retreat(st *models.WizardState) bool {
	if st.CurrentStep == 0 {
		return false
	}
	st.CurrentStep--
	return true
}

// Complete reports whether every leg has a resolved selection and the wizard
// sits on the final step, enabling submission.
func Complete(st models.WizardState) bool {
	if len(st.Legs) == 0 || st.CurrentStep != len(st.Legs)-1 {
		return false
	}
	for _, sel := range st.Selections {
		if sel == nil {
			return false
		}
	}
	return true
}
