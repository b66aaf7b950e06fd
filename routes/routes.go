package routes

import (
	"ecommerce-api/controllers"
	"ecommerce-api/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers wired into the router.
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Category *controllers.CategoryController
	Product  *controllers.ProductController
	Order    *controllers.OrderController
	Upload   *controllers.UploadController
}

// Register wires all route groups. Public routes: auth, category/product
// reads and seeders. Everything else requires a valid token; mutating
// catalog routes additionally require the admin flag.
func Register(r *gin.Engine, c Controllers, jwtSecret string) {
	auth := r.Group("/auth")
	auth.POST("/signup", c.Auth.Signup)
	auth.POST("/signin", c.Auth.Signin)

	users := r.Group("/users")
	users.Use(middleware.AuthRequired(jwtSecret))
	users.GET("", middleware.AdminOnly(), c.User.GetUsers)
	users.GET("/:id", c.User.GetUser)
	users.PUT("/:id", c.User.UpdateUser)
	users.DELETE("/:id", c.User.DeleteUser)

	categories := r.Group("/categories")
	categories.GET("", c.Category.GetCategories)
	categories.GET("/seeder", c.Category.SeedCategories)

	products := r.Group("/products")
	products.GET("", c.Product.GetProducts)
	products.GET("/seeder", c.Product.SeedProducts)
	products.GET("/:id", c.Product.GetProduct)
	products.POST("", middleware.AuthRequired(jwtSecret), middleware.AdminOnly(), c.Product.CreateProduct)
	products.PUT("/:id", middleware.AuthRequired(jwtSecret), middleware.AdminOnly(), c.Product.UpdateProduct)
	products.DELETE("/:id", middleware.AuthRequired(jwtSecret), middleware.AdminOnly(), c.Product.DeleteProduct)

	orders := r.Group("/orders")
	orders.Use(middleware.AuthRequired(jwtSecret))
	orders.POST("", c.Order.CreateOrder)
	orders.GET("/:id", c.Order.GetOrder)

	upload := r.Group("/upload")
	upload.Use(middleware.AuthRequired(jwtSecret), middleware.AdminOnly())
	upload.POST("/:id", c.Upload.UploadProductImage)
}
