package models

// SelectedFerry is a resolved slot of the selection wizard: a sailing plus
// the category the traveller picked and the committed per-pax fare
// (category price + pmb, fixed at selection time).
type SelectedFerry struct {
	Ferry    FerryOffering `json:"ferry" bson:"ferry"`
	Category string        `json:"category" bson:"category"`
	Price    float64       `json:"price" bson:"price"`
}

// WizardState is the explicit state of the multi-leg selection wizard.
// Invariant: len(Selections) == len(Legs) after every transition, and
// CurrentStep always indexes into Legs. A nil selection means the leg has
// not been resolved yet.
type WizardState struct {
	Legs        []Leg            `json:"legs"`
	CurrentStep int              `json:"currentStep"`
	Selections  []*SelectedFerry `json:"selections"`
}

// WizardSession wraps a WizardState with the traveller counts carried over
// from the search form. Sessions live in the cache under SessionID with a
// TTL and are never persisted.
type WizardSession struct {
	SessionID string      `json:"sessionId"`
	State     WizardState `json:"state"`
	Adults    int         `json:"adults"`
	Children  int         `json:"children"`
	UserAgent string      `json:"userAgent,omitempty"`
}

// BookingPayload is the final wizard output handed to the contact-details
// stage. Constructed once all slots are resolved; never mutated afterward.
type BookingPayload struct {
	SelectedFerries []SelectedFerry `json:"selectedFerries"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
}
