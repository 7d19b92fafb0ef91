package model

import "strings"

type Product string

const (
	ProductKP281 Product = "KP281"
	ProductKP481 Product = "KP481"
	ProductKP781 Product = "KP781"
)

func (p Product) String() string { return string(p) }

func (p Product) Valid() bool {
	return p == ProductKP281 || p == ProductKP481 || p == ProductKP781
}

// ParseProduct normalizes input to a known model code.
// Returns (value, true) if valid; otherwise ("", false).
func ParseProduct(s string) (Product, bool) {
	p := Product(strings.ToUpper(strings.TrimSpace(s)))
	if p.Valid() {
		return p, true
	}
	return "", false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, true
	case "female", "f":
		return GenderFemale, true
	default:
		return "", false
	}
}

type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "Single"
	MaritalPartnered MaritalStatus = "Partnered"
)

func (m MaritalStatus) String() string { return string(m) }

func (m MaritalStatus) Valid() bool { return m == MaritalSingle || m == MaritalPartnered }

func ParseMaritalStatus(s string) (MaritalStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return MaritalSingle, true
	case "partnered":
		return MaritalPartnered, true
	default:
		return "", false
	}
}

// CustomerRecord is one customer's survey row. Records are immutable after
// load; the dataset never mutates or deletes them during a session.
type CustomerRecord struct {
	Product       Product       `json:"product"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Education     int           `json:"education"` // years
	MaritalStatus MaritalStatus `json:"marital_status"`
	Usage         int           `json:"usage"`   // times per week
	Fitness       int           `json:"fitness"` // self-rated, 1..5
	Income        float64       `json:"income"`
	Miles         float64       `json:"miles"`
}
