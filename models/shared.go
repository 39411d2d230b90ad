package models

// Delivery types describe where a booked service is rendered.
const (
	DeliveryCustomerLocation = "customer_location"
	DeliveryBusinessLocation = "business_location"
	DeliveryVirtual          = "virtual"
	DeliveryBothLocations    = "both_locations"
)

// ValidDeliveryType reports whether t is one of the known delivery types.
func ValidDeliveryType(t string) bool {
	switch t {
	case DeliveryCustomerLocation, DeliveryBusinessLocation, DeliveryVirtual, DeliveryBothLocations:
		return true
	}
	return false
}

// GeoPoint holds optional coordinates attached to addresses.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// DayHours describes a business's opening window for one weekday.
type DayHours struct {
	Open   string `bson:"open" json:"open"`     // "09:00"
	Close  string `bson:"close" json:"close"`   // "17:00"
	Closed bool   `bson:"closed" json:"closed"` // true overrides open/close
}

// WeekHours maps lowercase weekday names ("monday".."sunday") to hours.
type WeekHours map[string]DayHours
