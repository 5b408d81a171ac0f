package state

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// DefaultCatalog seeds the mirror until the first successful refresh.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Title:       "Neon Streetwear Jacket",
			Description: "Holographic tech-fabric with reactive LED strips and quantum insulation",
			Price:       decimal.NewFromInt(499),
			Category:    domain.CategoryClothes,
			Gradient:    "from-[#00d4ff] to-[#b300ff]",
			Size:        domain.SizeLarge,
			Stock:       15,
			Image:       "/images/neon-jacket.jpg",
		},
		{
			ID:          2,
			Title:       "Cyber Running Shoes",
			Description: "Anti-gravity soles with neural sync technology",
			Price:       decimal.NewFromInt(349),
			Category:    domain.CategoryShoes,
			Gradient:    "from-[#ff00ff] to-[#00fff5]",
			Size:        domain.SizeMedium,
			Stock:       24,
			Image:       "/images/cyber-shoes.jpg",
		},
		{
			ID:          3,
			Title:       "Quantum Tech Backpack",
			Description: "Dimensional storage with biometric security",
			Price:       decimal.NewFromInt(599),
			Category:    domain.CategoryBags,
			Gradient:    "from-[#00ff88] to-[#00d4ff]",
			Size:        domain.SizeMedium,
			Stock:       10,
			Image:       "/images/quantum-backpack.jpg",
		},
		{
			ID:          4,
			Title:       "Holographic Sneakers",
			Description: "Color-shifting nano-material with smart cushioning",
			Price:       decimal.NewFromInt(279),
			Category:    domain.CategoryShoes,
			Gradient:    "from-[#ffeb3b] to-[#ff00ff]",
			Size:        domain.SizeSmall,
			Stock:       42,
			Image:       "/images/holo-sneakers.jpg",
		},
		{
			ID:          5,
			Title:       "Plasma Shoulder Bag",
			Description: "Lightweight carbon-fiber with neon accent strips",
			Price:       decimal.NewFromInt(399),
			Category:    domain.CategoryBags,
			Gradient:    "from-[#b300ff] to-[#00fff5]",
			Size:        domain.SizeSmall,
			Stock:       18,
			Image:       "/images/plasma-bag.jpg",
		},
		{
			ID:          6,
			Title:       "Cyberpunk Hoodie Set",
			Description: "Temperature-adaptive fabric with integrated AR display",
			Price:       decimal.NewFromInt(699),
			Category:    domain.CategoryClothes,
			Gradient:    "from-[#00d4ff] to-[#00ff88]",
			Size:        domain.SizeLarge,
			Stock:       7,
			Image:       "/images/cyberpunk-hoodie.jpg",
		},
	}
}
