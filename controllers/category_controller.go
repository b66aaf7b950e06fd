package controllers

import (
	"net/http"

	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetCategories returns all categories
func (cc *CategoryController) GetCategories(ctx *gin.Context) {
	categories, svcErr := cc.categoryService.GetCategories(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// SeedCategories loads the fixed category set
func (cc *CategoryController) SeedCategories(ctx *gin.Context) {
	if svcErr := cc.categoryService.SeedCategories(ctx.Request.Context()); svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Categories seeded"})
}
