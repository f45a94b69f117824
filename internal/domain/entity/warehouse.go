package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID          string
	Name        string // único
	Location    string
	ManagerName string
	AddedOn     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
