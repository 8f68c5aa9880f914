package dto

import "github.com/atompoint/storefront/internal/domain"

type ProductDTO struct {
	ID        string `json:"id" example:"atom_pts_500"`
	Operator  string `json:"operator" example:"ATOM"`
	Category  string `json:"category" example:"Points"`
	Name      string `json:"name" example:"500 Points"`
	PriceMMK  int    `json:"priceMMK" example:"1500"`
	PriceCr   int    `json:"priceCr" example:"15"`
	Available bool   `json:"available"`
}

type ProductRequestDTO struct {
	ID        string `json:"id"`
	Operator  string `json:"operator"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	PriceMMK  int    `json:"priceMMK"`
	PriceCr   int    `json:"priceCr"`
	Available bool   `json:"available"`
}

// GroupedProductsResponseDTO groups the catalog by operator, then category.
type GroupedProductsResponseDTO struct {
	Products map[string]map[string][]ProductDTO `json:"products"`
}

type ProductResponseDTO struct {
	Product ProductDTO `json:"product"`
}

func NewProductDTO(product domain.Product) ProductDTO {
	return ProductDTO{
		ID:        product.ID,
		Operator:  product.Operator,
		Category:  product.Category,
		Name:      product.Name,
		PriceMMK:  product.PriceMMK,
		PriceCr:   product.PriceCr,
		Available: product.Available,
	}
}

func GroupProducts(products []domain.Product) map[string]map[string][]ProductDTO {
	grouped := map[string]map[string][]ProductDTO{}
	for _, product := range products {
		byCategory, ok := grouped[product.Operator]
		if !ok {
			byCategory = map[string][]ProductDTO{}
			grouped[product.Operator] = byCategory
		}
		byCategory[product.Category] = append(byCategory[product.Category], NewProductDTO(product))
	}
	return grouped
}
