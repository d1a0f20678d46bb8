package api

import (
	"database/sql"
	"net/http"

	"github.com/stockpilehq/stockpile/internal/model"
)

// NewRouter creates the API router with all endpoints registered. Identity
// resolution wraps the whole mux: every handler sees the caller's resolved
// role (or none), and the rule layer enforces access for the inventory and
// order operations. Management surfaces are gated by middleware instead.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	productsHandler := &ProductsHandler{DB: db}
	inventoryHandler := &InventoryHandler{DB: db}
	ordersHandler := &OrdersHandler{DB: db}

	requireAdmin := RequireRole(model.RoleAdmin)
	requireManager := RequireRole(model.RoleManager)

	// Auth.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", RequireAuth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", RequireAuth(http.HandlerFunc(authHandler.ChangePassword)))

	// Users (admin only).
	mux.Handle("GET /api/users", requireAdmin(http.HandlerFunc(usersHandler.List)))
	mux.Handle("POST /api/users", requireAdmin(http.HandlerFunc(usersHandler.Create)))
	mux.Handle("GET /api/users/{id}", requireAdmin(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("PUT /api/users/{id}/role", requireAdmin(http.HandlerFunc(usersHandler.UpdateRole)))
	mux.Handle("PUT /api/users/{id}/password", requireAdmin(http.HandlerFunc(usersHandler.ResetPassword)))
	mux.Handle("DELETE /api/users/{id}", requireAdmin(http.HandlerFunc(usersHandler.Delete)))

	// Products: read (any authenticated role), write (manager+).
	mux.Handle("GET /api/products", RequireAuth(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/products", requireManager(http.HandlerFunc(productsHandler.Create)))
	mux.Handle("GET /api/products/{id}", RequireAuth(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/products/{id}", requireManager(http.HandlerFunc(productsHandler.Update)))
	mux.Handle("DELETE /api/products/{id}", requireManager(http.HandlerFunc(productsHandler.Delete)))
	mux.Handle("PUT /api/products/{id}/image", requireManager(http.HandlerFunc(productsHandler.UploadImage)))
	mux.Handle("GET /api/products/{id}/image", RequireAuth(http.HandlerFunc(productsHandler.GetImage)))

	// Inventory: ledger read is public, the rest is rule-checked.
	mux.HandleFunc("GET /api/inventory", inventoryHandler.List)
	mux.HandleFunc("GET /api/inventory/view", inventoryHandler.View)
	mux.HandleFunc("POST /api/inventory", inventoryHandler.Adjust)

	// Orders: rule-checked; creation is unguarded.
	mux.HandleFunc("GET /api/orders", ordersHandler.List)
	mux.HandleFunc("POST /api/orders", ordersHandler.Create)
	mux.HandleFunc("GET /api/orders/{id}", ordersHandler.Get)
	mux.HandleFunc("GET /api/orders/{id}/status", ordersHandler.Status)
	mux.HandleFunc("PUT /api/orders/{id}", ordersHandler.Update)

	return CORS(Identity(jwtSecret, db)(mux))
}
