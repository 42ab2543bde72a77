package wizard

import (
	"testing"

	"trabby/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedState(n int) models.WizardState {
	st := NewState(threeLegs()[:n])
	for i := 0; i < n; i++ {
		CommitSelection(&st, selectionFor("ship", float64(100*(i+1))))
	}
	return st
}

func TestAssemblePayloadSuccess(t *testing.T) {
	st := completedState(3)

	payload, err := AssemblePayload(st, 2, 1)
	require.NoError(t, err)
	require.Len(t, payload.SelectedFerries, 3)
	assert.Equal(t, 2, payload.Adults)
	assert.Equal(t, 1, payload.Children)
}

func TestAssemblePayloadRejectsAnyEmptySlot(t *testing.T) {
	// Every combination of null slots must be rejected.
	for mask := 0; mask < 7; mask++ { // 7 == all slots filled
		st := completedState(3)
		st.CurrentStep = 2
		for i := 0; i < 3; i++ {
			if mask&(1<<i) == 0 {
				st.Selections[i] = nil
			}
		}

		_, err := AssemblePayload(st, 2, 0)
		require.Error(t, err, "mask %b must be rejected", mask)
		assert.Equal(t, CodeIncompleteSelections, ErrorCode(err))
	}
}

func TestAssemblePayloadRejectsLengthMismatch(t *testing.T) {
	st := completedState(3)
	st.Selections = st.Selections[:2]

	_, err := AssemblePayload(st, 1, 0)
	require.Error(t, err)
	assert.Equal(t, CodeIncompleteSelections, ErrorCode(err))
}

func TestAssemblePayloadRejectsNoAdults(t *testing.T) {
	st := completedState(2)

	_, err := AssemblePayload(st, 0, 3)
	require.Error(t, err)
	assert.Equal(t, CodeNoAdults, ErrorCode(err), "children cannot travel without an adult")
}

func TestAssemblePayloadRejectsEmptyWizard(t *testing.T) {
	_, err := AssemblePayload(models.WizardState{}, 1, 0)
	require.Error(t, err)
	assert.Equal(t, CodeIncompleteSelections, ErrorCode(err))
}
