package service

import "github.com/niksmo/storefront/internal/core/domain"

// SeedCatalog returns the built-in catalog used to populate an
// empty product slot, ids 1..6 in listed order.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Bonnet Satin Double Face",
			Price:       20,
			Description: "Bonnet satin réversible avec deux couleurs différentes",
			Image:       "images/bonnet-satin-double-face.jpg",
			Colors:      []string{"Noir/Rose", "Bleu/Blanc", "Violet/Beige", "Rouge/Or"},
		},
		{
			ID:          2,
			Name:        "Taie d'Oreiller Satin",
			Price:       20,
			Description: "Taie d'oreiller en satin, anti-frisottis et anti-rides",
			Image:       "images/taie-oreiller-satin.jpg",
			Colors:      []string{"Noir", "Blanc", "Rose", "Gris", "Champagne"},
		},
		{
			ID:          3,
			Name:        "Chouchou en Satin",
			Price:       5,
			Description: "Chouchou en satin doux pour protéger vos cheveux",
			Image:       "images/chouchou-satin.jpg",
			Colors:      []string{"Noir", "Rose", "Bleu", "Beige", "Violet"},
		},
		{
			ID:          4,
			Name:        "Pack Taie d'Oreiller + Bonnet + Chouchou",
			Price:       40,
			Description: "Pack complet : taie d'oreiller, bonnet et chouchou en satin",
			Image:       "images/pack-complet.jpg",
			Colors:      []string{"Noir", "Rose", "Blanc", "Bleu"},
		},
		{
			ID:          5,
			Name:        "Pack 2 Chouchous",
			Price:       7,
			Description: "Pack de 2 chouchous en satin à prix réduit",
			Image:       "images/pack-2-chouchous.jpg",
			Colors:      []string{"Noir", "Rose", "Violet", "Assorti"},
		},
		{
			ID:          6,
			Name:        "Pack Double Taie d'Oreiller",
			Price:       35,
			Description: "Pack de deux taies d'oreiller en satin, économisez",
			Image:       "images/pack-double-taie.jpg",
			Colors:      []string{"Noir", "Blanc", "Rose", "Assorti"},
		},
	}
}
