package sector

import "errors"

// ErrUnknown is returned whenever a submitted key is not a member of the
// enumeration.
var ErrUnknown = errors.New("unknown sector")

// Sector is one fixed service category. The set is baked into the binary;
// each key maps 1:1 to its own listing table.
type Sector struct {
	Key  string
	Name string
}

// All is the ordered sector enumeration. Order is presentation order.
var All = []Sector{
	{Key: "hotel", Name: "Hotel"},
	{Key: "event_management", Name: "Event Management"},
	{Key: "construction", Name: "Construction"},
	{Key: "hospital", Name: "Hospital"},
	{Key: "medical", Name: "Medical"},
	{Key: "electrical_shop", Name: "Electrical Shop"},
	{Key: "mechanical_workshop", Name: "Mechanical Workshop"},
	{Key: "car_bike_accessories", Name: "Car & Bike Accessories"},
	{Key: "beauty_parlor", Name: "Beauty Parlor"},
	{Key: "departmental_store", Name: "Departmental Store"},
}

// tables maps sector key to its listing table name. Built once from the
// enumeration; listing storage dispatches through this map only, so request
// text can never reach the database as a table name.
var tables = func() map[string]string {
	m := make(map[string]string, len(All))
	for _, s := range All {
		m[s.Key] = "sector_" + s.Key
	}
	return m
}()

// Valid reports whether key is a member of the enumeration.
func Valid(key string) bool {
	_, ok := tables[key]
	return ok
}

// Table returns the listing table name for a sector key.
// POST: Returns the table name and true, or "" and false for unknown keys
func Table(key string) (string, bool) {
	t, ok := tables[key]
	return t, ok
}

// DisplayName returns the human-readable name for a sector key, or the key
// itself when unknown.
func DisplayName(key string) string {
	for _, s := range All {
		if s.Key == key {
			return s.Name
		}
	}
	return key
}

// Default returns the first sector in presentation order.
func Default() Sector {
	return All[0]
}
