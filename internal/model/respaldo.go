package model

// Respaldo is the POS export document: one top-level key per collection.
// ConfigTicket is an array for compatibility with existing backup files, even
// though the live collection holds at most the singleton.
type Respaldo struct {
	Ventas          []Venta          `json:"ventas"`
	Entradas        []Entrada        `json:"entradas"`
	Salidas         []Salida         `json:"salidas"`
	Productos       []Producto       `json:"productos"`
	Clientes        []Cliente        `json:"clientes"`
	ProductosPuntos []ProductoPuntos `json:"productosPuntos"`
	CortesDiarios   []CorteDiario    `json:"cortesDiarios"`
	ConfigTicket    []ConfigTicket   `json:"configTicket"`
}
