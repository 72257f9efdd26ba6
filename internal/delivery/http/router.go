package http

import (
	"github.com/digimart/catalog-service/internal/delivery/http/handlers"
	"github.com/digimart/catalog-service/internal/delivery/http/middleware"
	"github.com/digimart/catalog-service/internal/usecase"
	catalogusecase "github.com/digimart/catalog-service/internal/usecase/catalog"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every route of the service onto the fiber app.
// Public storefront routes take no middleware; merchant routes require a
// live session with a verified email.
func RegisterRoutes(
	app *fiber.App,
	sessions usecase.SessionUsecase,
	merchants usecase.MerchantUsecase,
	catalog catalogusecase.CatalogUsecase,
) {
	authHandler := handlers.NewAuthHandler(sessions)
	merchantHandler := handlers.NewMerchantHandler(merchants)
	catalogHandler := handlers.NewCatalogHandler(catalog, merchants)
	storefrontHandler := handlers.NewStorefrontHandler(catalog)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/login", authHandler.LogIn)
	auth.Post("/logout", authHandler.LogOut)
	auth.Post("/resend-verification", authHandler.ResendVerification)
	auth.Get("/me", middleware.Auth(sessions), authHandler.Me)

	// Public storefront.
	api.Get("/products", storefrontHandler.ListProducts)
	api.Get("/products/:id", storefrontHandler.GetProduct)

	// Merchant surface.
	authed := api.Group("", middleware.Auth(sessions), middleware.RequireVerified())
	authed.Post("/merchants", merchantHandler.Register)
	authed.Get("/merchants/me", merchantHandler.Me)
	authed.Get("/merchants/me/products", catalogHandler.MyProducts)
	authed.Post("/merchants/me/products", catalogHandler.CreateProduct)
	authed.Put("/products/:id", catalogHandler.UpdateProduct)
	authed.Delete("/products/:id", catalogHandler.DeleteProduct)
}
