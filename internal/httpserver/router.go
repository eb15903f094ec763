package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	authmw "product-manager/internal/middleware/auth"
	"product-manager/internal/models"
	loggingmw "product-manager/pkg/middleware/logging"
)

type Deps struct {
	Log     *slog.Logger
	Auth    *AuthHTTP
	Product *ProductHTTP
	Guard   *authmw.RoleGuard
}

func NewServer(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(loggingmw.RequestLogger(d.Log))

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/api/auth")
	auth.POST("/login", d.Auth.Login)
	auth.POST("/register", d.Auth.Register)

	adminOnly := d.Guard.RequireRole(models.RoleAdmin)
	anyRole := d.Guard.RequireRole(models.RoleAdmin, models.RoleCustomer)

	products := e.Group("/api/products")
	products.POST("", d.Product.CreateProduct, adminOnly)
	products.GET("/:code", d.Product.GetProductByCode, anyRole)
	products.POST("/search", d.Product.SearchProducts, anyRole)
	products.PUT("/:code", d.Product.UpdateProductByCode, adminOnly)
	products.DELETE("/:code", d.Product.DeleteProductByCode, adminOnly)

	return e
}
