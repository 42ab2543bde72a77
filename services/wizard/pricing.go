package wizard

import (
	"fmt"

	"trabby/models"
)

// ChooseCategory resolves a chosen ferry into a priced selection. The
// committed fare is the category price plus the pmb surcharge; the additive
// rule is fixed business policy, not configurable per call.
//
// A category absent from the offering's price list means the caller and the
// catalog have desynced, so this fails loudly instead of defaulting.
func ChooseCategory(offering models.FerryOffering, category string) (models.SelectedFerry, error) {
	for _, opt := range offering.Prices {
		if opt.Category == category {
			return models.SelectedFerry{
				Ferry:    offering,
				Category: category,
				Price:    opt.Price + opt.PMB,
			}, nil
		}
	}
	return models.SelectedFerry{}, NewWizardError(CodeCategoryNotFound,
		fmt.Sprintf("category %q is not offered on %s", category, offering.ShipName))
}
