package dto

import (
	"time"

	"github.com/finex/backend/internal/application/adapter"
	"github.com/finex/backend/internal/application/usecase/product"
	"github.com/finex/backend/internal/domain/entity"
)

// ProductRequest represents the request body for product creation and update.
type ProductRequest struct {
	Name        string        `json:"name"`
	Code        string        `json:"code,omitempty"`
	Description string        `json:"description,omitempty"`
	BasePrice   NumericString `json:"base_price"`
	CategoryID  *string       `json:"category_id,omitempty"`
	Kind        string        `json:"kind" binding:"required"`
}

// InlineProductRequest represents the quick-create request of the movement form.
type InlineProductRequest struct {
	Name  string        `json:"name"`
	Price NumericString `json:"price"`
	Kind  string        `json:"kind" binding:"required"`
}

// ProductIDsRequest represents a request carrying a product selection.
type ProductIDsRequest struct {
	IDs []string `json:"ids"`
}

// PermanentDeleteRequest represents the request body for permanent deletion.
type PermanentDeleteRequest struct {
	IDs  []string `json:"ids,omitempty"`
	All  bool     `json:"all,omitempty"`
	Kind string   `json:"kind,omitempty"`
}

// ProductCategoryResponse represents the category embedded in a product.
type ProductCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse represents a single product in API responses.
type ProductResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Code        *string                  `json:"code"`
	Description *string                  `json:"description"`
	BasePrice   string                   `json:"base_price"`
	CategoryID  *string                  `json:"category_id"`
	Category    *ProductCategoryResponse `json:"category"`
	Kind        string                   `json:"kind"`
	Active      bool                     `json:"active"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// CategoryGroupResponse represents a category tab with its product count.
type CategoryGroupResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CatalogResponse represents the catalog view.
type CatalogResponse struct {
	MainTab      string                  `json:"main_tab"`
	CategoryTab  string                  `json:"category_tab"`
	IncomeCount  int                     `json:"income_count"`
	ExpenseCount int                     `json:"expense_count"`
	Groups       []CategoryGroupResponse `json:"groups"`
	FilterCount  int                     `json:"filtered_count"`
	DeletedCount int                     `json:"deleted_count"`
	Rows         []ProductResponse       `json:"rows"`
	Selected     []string                `json:"selected"`
	AllSelected  bool                    `json:"all_selected"`
	SomeSelected bool                    `json:"some_selected"`
}

// ProductPageResponse represents one page of the product picker.
type ProductPageResponse struct {
	Products []ProductResponse `json:"products"`
	HasMore  bool              `json:"has_more"`
}

// NextCodeResponse represents the suggested code for a new product.
type NextCodeResponse struct {
	Code string `json:"code"`
}

// CountResponse represents the number of affected rows.
type CountResponse struct {
	Count int64 `json:"count"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(p *entity.Product, category *entity.Category) ProductResponse {
	response := ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		BasePrice:   formatMoney(p.BasePrice),
		Kind:        string(p.Kind),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.CategoryID != nil {
		id := p.CategoryID.String()
		response.CategoryID = &id
	}
	if category != nil {
		response.Category = &ProductCategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		}
	}
	return response
}

func toProductResponses(products []*entity.ProductWithCategory) []ProductResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p.Product, p.Category)
	}
	return items
}

// ToCatalogResponse converts a catalog view to a CatalogResponse DTO.
func ToCatalogResponse(view *product.CatalogView) CatalogResponse {
	groups := make([]CategoryGroupResponse, len(view.Groups))
	for i, group := range view.Groups {
		groups[i] = CategoryGroupResponse{
			ID:    group.ID,
			Name:  group.Name,
			Count: group.Count,
		}
	}

	selected := make([]string, 0, view.Selection.Len())
	for _, id := range view.Selection.IDs() {
		selected = append(selected, id.String())
	}

	return CatalogResponse{
		MainTab:      string(view.MainTab),
		CategoryTab:  view.CategoryTab,
		IncomeCount:  view.IncomeCount,
		ExpenseCount: view.ExpenseCount,
		Groups:       groups,
		FilterCount:  len(view.Filtered),
		DeletedCount: len(view.Inactive),
		Rows:         toProductResponses(view.Rows),
		Selected:     selected,
		AllSelected:  view.AllSelected,
		SomeSelected: view.SomeSelected,
	}
}

// ToProductPageResponse converts a picker page to a ProductPageResponse DTO.
func ToProductPageResponse(page *adapter.ProductPage) ProductPageResponse {
	return ProductPageResponse{
		Products: toProductResponses(page.Products),
		HasMore:  page.HasMore,
	}
}
