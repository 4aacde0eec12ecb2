package model

// FarmerProfile is a farmer record from the `aadhar` collection, converted
// to one explicit schema at the repository boundary.
type FarmerProfile struct {
	AadhaarNo string
	Name      string
	District  string
	State     string

	// Lat/Lon are nil when the record has no stored coordinates.
	// Callers fall back to geocoding district/state.
	Lat *float64
	Lon *float64
}

// HasCoordinates reports whether the profile carries usable coordinates.
func (p FarmerProfile) HasCoordinates() bool {
	return p.Lat != nil && p.Lon != nil
}
