package entity

// Airport.City is a free-text attribute, there is no city table.
type Airport struct {
	Base
	Name string  `db:"name"`
	City *string `db:"city"`
}

// Label renders the airport as shown on flight listings, e.g. "Boryspil, Kyiv".
func (a *Airport) Label() string {
	if a.City == nil || *a.City == "" {
		return a.Name
	}
	return a.Name + ", " + *a.City
}
