package dto

type CreateRepuestoDTO struct {
	Nombre        string  `json:"nombre" validate:"required"`
	SKU           string  `json:"sku" validate:"required"`
	Descripcion   *string `json:"descripcion,omitempty"`
	CantidadStock int     `json:"cantidad_stock" validate:"gte=0"`
	StockMinimo   int     `json:"stock_minimo" validate:"gte=0"`
}

// AjustarStockDTO es el delta con signo de un clic (+1/-1 en la UI, aunque el
// endpoint admite cualquier entero distinto de cero).
type AjustarStockDTO struct {
	Cantidad int `json:"cantidad" validate:"required"`
}

type StockResultadoDTO struct {
	ID            int64 `json:"id"`
	CantidadStock int   `json:"cantidad_stock"`
}
