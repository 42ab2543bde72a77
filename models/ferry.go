package models

// PriceOption is one priced travel category on a sailing. The payable fare
// for a category is Price plus PMB (the per-booking surcharge).
type PriceOption struct {
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
	PMB      float64 `json:"pmb" bson:"pmb"`
}

// FerryOffering is a specific ferry's scheduled sailing on one route,
// as served by the upstream catalog API. From and To carry LocationCode
// values, not display names.
type FerryOffering struct {
	ID        int           `json:"id" bson:"id"`
	ShipName  string        `json:"ship_name" bson:"shipName"`
	From      string        `json:"from" bson:"from"`
	To        string        `json:"to" bson:"to"`
	Departure string        `json:"departure" bson:"departure"`
	Arrival   string        `json:"arrival" bson:"arrival"`
	Prices    []PriceOption `json:"prices" bson:"prices"`
	Image     string        `json:"image,omitempty" bson:"image,omitempty"`
}

// CatalogResponse is the upstream catalog envelope. Anything other than
// Status == "success" with a data array is treated as a failed fetch.
type CatalogResponse struct {
	Status string          `json:"status"`
	Data   []FerryOffering `json:"data"`
}
