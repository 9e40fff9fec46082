package models

// Category classifies expenses, tasks and suppliers.
type Category string

// Categories lists all categories known to the dashboard.
var Categories = []Category{
	"Mão de Obra",
	"Materiais de Construção",
	"Marmoraria",
	"Marcenaria",
	"Vidraçaria",
	"Arquitetura",
	"Gesso / Drywall",
	"Pintura",
	"Elétrica / Hidráulica",
	"Climatização",
	"Esquadrias",
	"Revestimentos",
	"Mobiliário",
	"Iluminação",
	"Decoração",
	"Demolição",
	"Outros",
}
