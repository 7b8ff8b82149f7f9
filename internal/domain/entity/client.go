package entity

import "time"

// Client representa un cliente del directorio (ventas y órdenes de servicio).
type Client struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	Email     string
	Active    bool
	CreatedAt time.Time
}
