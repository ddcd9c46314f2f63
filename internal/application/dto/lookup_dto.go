package dto

// DepartmentDTO fila del catálogo de departamentos.
type DepartmentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SkillDTO fila del catálogo de skills.
type SkillDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MarketDemand *string `json:"market_demand"`
}

// ClientDTO fila del catálogo de clientes.
type ClientDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
