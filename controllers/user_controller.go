package controllers

import (
	"net/http"

	"ecommerce-api/middleware"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers returns paginated users (admin only, enforced at the route)
func (uc *UserController) GetUsers(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	result, svcErr := uc.userService.GetUsers(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUser returns a user with their order summaries. Non-admins can only
// read their own account.
func (uc *UserController) GetUser(ctx *gin.Context) {
	targetID := ctx.Param("id")
	callerID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if targetID != callerID && !middleware.IsAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	user, svcErr := uc.userService.GetUser(ctx.Request.Context(), targetID)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser updates a user's mutable fields (owner or admin)
func (uc *UserController) UpdateUser(ctx *gin.Context) {
	targetID := ctx.Param("id")
	callerID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if targetID != callerID && !middleware.IsAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req services.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, svcErr := uc.userService.UpdateUser(ctx.Request.Context(), targetID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser removes a user account (owner or admin)
func (uc *UserController) DeleteUser(ctx *gin.Context) {
	targetID := ctx.Param("id")
	callerID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if targetID != callerID && !middleware.IsAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if svcErr := uc.userService.DeleteUser(ctx.Request.Context(), targetID); svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": targetID})
}
