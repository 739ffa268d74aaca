package domain

import "errors"

// ErrUnknownField is returned for a field key outside the shipping form.
var ErrUnknownField = errors.New("unknown checkout field")

// Field keys accepted by SetField, mirroring the shipping form inputs.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldAddress    = "address"
	FieldCity       = "city"
	FieldPostalCode = "postal_code"
	FieldCountry    = "country"
)

// Draft caches the shipping form fields across the checkout flow so the
// visitor never retypes them. Fields are independently settable; there are
// no cross-field invariants and no validation beyond the form's own.
type Draft struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SetField overwrites one named field.
func (d *Draft) SetField(key, value string) error {
	switch key {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldAddress:
		d.Address = value
	case FieldCity:
		d.City = value
	case FieldPostalCode:
		d.PostalCode = value
	case FieldCountry:
		d.Country = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Reset restores all fields to empty strings. Called after order placement.
func (d *Draft) Reset() {
	*d = Draft{}
}
