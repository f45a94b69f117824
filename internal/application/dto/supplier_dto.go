package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	VendorName        string `json:"vendor_name" validate:"required"`
	ContactPersonName string `json:"contact_person_name" validate:"required"`
	ContactNumber     string `json:"contact_number" validate:"required"`
	AddressLine1      string `json:"address_line1" validate:"required"`
	AddressLine2      string `json:"address_line2"`
	AddressLine3      string `json:"address_line3"`
	City              string `json:"city" validate:"required"`
	State             string `json:"state" validate:"required"`
	PinCode           string `json:"pin_code" validate:"required"`
	GSTNo             string `json:"gst_no" validate:"required"`
	EmailID           string `json:"email_id" validate:"required,email"`
	WhatsappNo        string `json:"whatsapp_no" validate:"required"`
}

// UpdateSupplierRequest campos actualizables de un proveedor.
type UpdateSupplierRequest struct {
	VendorName        *string `json:"vendor_name"`
	ContactPersonName *string `json:"contact_person_name"`
	ContactNumber     *string `json:"contact_number"`
	AddressLine1      *string `json:"address_line1"`
	AddressLine2      *string `json:"address_line2"`
	AddressLine3      *string `json:"address_line3"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	PinCode           *string `json:"pin_code"`
	GSTNo             *string `json:"gst_no"`
	EmailID           *string `json:"email_id"`
	WhatsappNo        *string `json:"whatsapp_no"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID                string    `json:"id"`
	VendorName        string    `json:"vendor_name"`
	ContactPersonName string    `json:"contact_person_name"`
	ContactNumber     string    `json:"contact_number"`
	AddressLine1      string    `json:"address_line1"`
	AddressLine2      string    `json:"address_line2"`
	AddressLine3      string    `json:"address_line3"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	PinCode           string    `json:"pin_code"`
	GSTNo             string    `json:"gst_no"`
	EmailID           string    `json:"email_id"`
	WhatsappNo        string    `json:"whatsapp_no"`
	AddedOn           time.Time `json:"added_on"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
