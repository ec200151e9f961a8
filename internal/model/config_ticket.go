package model

// ConfigTicketID is the fixed key of the singleton record.
const ConfigTicketID = 1

// ConfigTicket is the singleton ticket-format configuration consumed by the
// print collaborator.
type ConfigTicket struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	NombreTienda string `json:"nombreTienda"`
	Encabezado   string `json:"encabezado"`
	Pie          string `json:"pie"`
	Fuente       string `json:"fuente"`
	TamanoFuente string `json:"tamanoFuente"`
	Negrita      bool   `json:"negrita"`
}

func (ConfigTicket) TableName() string { return "configTicket" }

// DefaultConfigTicket mirrors the defaults applied before any config is saved.
func DefaultConfigTicket() ConfigTicket {
	return ConfigTicket{
		ID:           ConfigTicketID,
		NombreTienda: "Mi Tienda",
		Fuente:       "monospace",
		TamanoFuente: "11",
	}
}
