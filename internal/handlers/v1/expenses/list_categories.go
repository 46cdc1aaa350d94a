package expenses

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []string `json:"categories" doc:"Every category in display order"`
	}
}

type categoryLister interface {
	ListCategories() []string
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	ExpenseService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{ExpenseService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	out := &ListCategoriesOutput{}
	out.Body.Categories = h.ExpenseService.ListCategories()
	return out, nil
}
