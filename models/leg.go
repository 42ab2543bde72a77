package models

// Leg is one from/to/departure-date journey segment of a multi-stop search.
// From and To hold display names as submitted by the search form; the
// catalog client translates them to LocationCode values when filtering.
// Legs are immutable once parsed for the lifetime of the wizard.
type Leg struct {
	From      string `json:"from" bson:"from"`
	To        string `json:"to" bson:"to"`
	Departure string `json:"departure" bson:"departure"`
}
