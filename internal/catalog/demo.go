package catalog

import "shopwidget/internal/domain"

// Demo is the built-in listing used when no catalog database is configured.
func Demo() []domain.Product {
	return []domain.Product{
		{Key: "monstera", SKU: "PLANT-MONSTERA", Name: "Monstera Deliciosa", Description: "Grote kamerplant", PriceCents: 2495, Currency: "EUR", ImageURL: "/static/img/monstera.jpg"},
		{Key: "ficus", SKU: "PLANT-FICUS", Name: "Ficus Lyrata", Description: "Vioolbladplant", PriceCents: 3450, Currency: "EUR", ImageURL: "/static/img/ficus.jpg"},
		{Key: "pilea", SKU: "PLANT-PILEA", Name: "Pilea Peperomioides", Description: "Pannenkoekenplant", PriceCents: 1000, Currency: "EUR", ImageURL: "/static/img/pilea.jpg"},
		{Key: "cactus", SKU: "PLANT-CACTUS", Name: "Cactus Mix", Description: "Set van drie", PriceCents: 550, Currency: "EUR", ImageURL: "/static/img/cactus.jpg"},
		{Key: "terracotta-pot", SKU: "POT-TERRACOTTA", Name: "Terracotta pot", Description: "Ø 14 cm", PriceCents: 799, Currency: "EUR", ImageURL: "/static/img/pot.jpg"},
	}
}
