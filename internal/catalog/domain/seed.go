package domain

import "time"

// SeedProducts returns the demo catalog inserted on first run when the
// products key is empty. Four wigs and two makeup items, mirroring the
// sample data the store launched with.
func SeedProducts() []Product {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}

	return []Product{
		{
			ID:          "1",
			Name:        "Peruca Lace Front Castanha",
			Description: "Cabelo humano natural, 50cm, cor castanha",
			Price:       50000,
			Image:       "./img/uploads/peruca1.jpg",
			Category:    "Perucas",
			Subcategory: "Lace Front",
			Clicks:      12,
			CreatedAt:   day("2025-01-10"),
			Tags:        []string{"cabelo", "natural", "castanha", "lace", "front"},
			Active:      true,
		},
		{
			ID:          "2",
			Name:        "Peruca Loira Lisa",
			Description: "Cabelo humano 100%, 60cm, loira platinada",
			Price:       60000,
			Image:       "./img/uploads/peruca2.jpg",
			Category:    "Perucas",
			Subcategory: "Full Lace",
			Clicks:      25,
			CreatedAt:   day("2025-01-08"),
			Tags:        []string{"loira", "lisa", "platinada", "full", "lace"},
			Active:      true,
		},
		{
			ID:          "3",
			Name:        "Peruca Cacheada Preta",
			Description: "Cabelo cacheado natural, 55cm, textura afro",
			Price:       55000,
			Image:       "./img/uploads/peruca3.jpg",
			Category:    "Perucas",
			Subcategory: "Lace Front",
			Clicks:      18,
			CreatedAt:   day("2025-01-12"),
			Tags:        []string{"cacheada", "preta", "afro", "natural", "textura"},
			Active:      true,
		},
		{
			ID:          "4",
			Name:        "Kit Maquiagem Profissional",
			Description: "Kit completo para maquilhagem profissional",
			Price:       45000,
			Image:       "./img/uploads/makeup1.jpg",
			Category:    "MakeUp",
			Subcategory: "Kits",
			Clicks:      8,
			CreatedAt:   day("2025-01-14"),
			Tags:        []string{"maquiagem", "kit", "profissional", "completo"},
			Active:      true,
		},
		{
			ID:          "5",
			Name:        "Base Líquida Premium",
			Description: "Base de alta cobertura, diversos tons",
			Price:       25000,
			Image:       "./img/uploads/makeup2.jpg",
			Category:    "MakeUp",
			Subcategory: "Base",
			Clicks:      15,
			CreatedAt:   day("2025-01-11"),
			Tags:        []string{"base", "líquida", "cobertura", "tons"},
			Active:      true,
		},
		{
			ID:          "6",
			Name:        "Peruca Bob Ruiva",
			Description: "Corte moderno bob, cor ruiva intensa, 35cm",
			Price:       48000,
			Image:       "./img/uploads/peruca4.jpg",
			Category:    "Perucas",
			Subcategory: "Lace Front",
			Clicks:      22,
			CreatedAt:   day("2025-01-09"),
			Tags:        []string{"bob", "ruiva", "moderno", "curto"},
			Active:      true,
		},
	}
}
