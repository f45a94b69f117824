package entity

import "time"

// Supplier representa un proveedor (vendor) del catálogo.
type Supplier struct {
	ID                string
	VendorName        string
	ContactPersonName string
	ContactNumber     string
	AddressLine1      string
	AddressLine2      string
	AddressLine3      string
	City              string
	State             string
	PinCode           string
	GSTNo             string // único
	EmailID           string // único
	WhatsappNo        string
	AddedOn           time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
