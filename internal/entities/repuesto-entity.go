package entities

import "time"

type Repuesto struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion,omitempty"`
	SKU           string    `json:"sku"`
	CantidadStock int       `json:"cantidad_stock"`
	StockMinimo   int       `json:"stock_minimo"`
	CreatedAt     time.Time `json:"created_at"`
}

// BajoMinimo indica si el stock actual está en o por debajo del umbral.
func (r *Repuesto) BajoMinimo() bool {
	return r.CantidadStock <= r.StockMinimo
}
