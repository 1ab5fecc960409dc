package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salon-backend/internal/events"
	"salon-backend/internal/handlers"
	"salon-backend/internal/middleware"
	"salon-backend/internal/models"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	saleHandler *handlers.SaleHandler,
	creditHandler *handlers.CreditHandler,
	expenseHandler *handlers.ExpenseHandler,
	appointmentHandler *handlers.AppointmentHandler,
	reportHandler *handlers.ReportHandler,
	systemHandler *handlers.SystemHandler,
	healthHandler *handlers.HealthHandler,
	hub *events.Hub,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Live change feed
	r.HandleFunc("/ws", hub.HandleWS)

	anyRole := []models.Role{models.RoleAdmin, models.RoleClerk}

	// Products and categories
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.Use(authMiddleware.RequireRole(anyRole...))
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", productHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/low-stock", productHandler.LowStock).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}/image", productHandler.UploadImage).Methods("POST")
	productsAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(productHandler.DeleteProduct))).Methods("DELETE")

	categoriesAPI := r.PathPrefix("/api/categories").Subrouter()
	categoriesAPI.Use(authMiddleware.RequireRole(anyRole...))
	categoriesAPI.HandleFunc("", productHandler.ListCategories).Methods("GET")
	categoriesAPI.HandleFunc("", productHandler.AddCategory).Methods("POST")
	categoriesAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(productHandler.DeleteCategory))).Methods("DELETE")

	// Sales
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.Use(authMiddleware.RequireRole(anyRole...))
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("", saleHandler.CreateSale).Methods("POST")
	salesAPI.HandleFunc("/customers", saleHandler.ListCustomers).Methods("GET")
	salesAPI.HandleFunc("/{id}", saleHandler.GetSale).Methods("GET")
	salesAPI.Handle("/{id}/cancel", authMiddleware.RequireAdmin(http.HandlerFunc(saleHandler.CancelSale))).Methods("POST")

	// Credits, payments and the credit customer registry
	creditsAPI := r.PathPrefix("/api/credits").Subrouter()
	creditsAPI.Use(authMiddleware.RequireRole(anyRole...))
	creditsAPI.HandleFunc("", creditHandler.ListCredits).Methods("GET")
	creditsAPI.HandleFunc("", creditHandler.CreateCredit).Methods("POST")
	creditsAPI.HandleFunc("/{id}", creditHandler.GetCredit).Methods("GET")
	creditsAPI.HandleFunc("/{id}/payments", creditHandler.ListPayments).Methods("GET")
	creditsAPI.HandleFunc("/{id}/payments", creditHandler.AddPayment).Methods("POST")
	creditsAPI.Handle("/{id}/cancel", authMiddleware.RequireAdmin(http.HandlerFunc(creditHandler.CancelCredit))).Methods("POST")

	creditCustomersAPI := r.PathPrefix("/api/credit-customers").Subrouter()
	creditCustomersAPI.Use(authMiddleware.RequireRole(anyRole...))
	creditCustomersAPI.HandleFunc("", creditHandler.ListCustomers).Methods("GET")
	creditCustomersAPI.HandleFunc("", creditHandler.CreateCustomer).Methods("POST")
	creditCustomersAPI.HandleFunc("/{id}", creditHandler.GetCustomer).Methods("GET")
	creditCustomersAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(creditHandler.DeleteCustomer))).Methods("DELETE")

	// Expenses
	expensesAPI := r.PathPrefix("/api/expenses").Subrouter()
	expensesAPI.Use(authMiddleware.RequireRole(anyRole...))
	expensesAPI.HandleFunc("", expenseHandler.ListExpenses).Methods("GET")
	expensesAPI.HandleFunc("", expenseHandler.CreateExpense).Methods("POST")
	expensesAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(expenseHandler.DeleteExpense))).Methods("DELETE")

	expenseCategoriesAPI := r.PathPrefix("/api/expense-categories").Subrouter()
	expenseCategoriesAPI.Use(authMiddleware.RequireRole(anyRole...))
	expenseCategoriesAPI.HandleFunc("", expenseHandler.ListCategories).Methods("GET")
	expenseCategoriesAPI.HandleFunc("", expenseHandler.AddCategory).Methods("POST")
	expenseCategoriesAPI.Handle("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(expenseHandler.DeleteCategory))).Methods("DELETE")

	// Appointments
	appointmentsAPI := r.PathPrefix("/api/appointments").Subrouter()
	appointmentsAPI.Use(authMiddleware.RequireRole(anyRole...))
	appointmentsAPI.HandleFunc("", appointmentHandler.List).Methods("GET")
	appointmentsAPI.HandleFunc("", appointmentHandler.Schedule).Methods("POST")
	appointmentsAPI.HandleFunc("/{id}/cancel", appointmentHandler.Cancel).Methods("POST")

	// Reports are admin-only
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.RequireAdmin)
	reportsAPI.HandleFunc("/sales", reportHandler.SalesReport).Methods("GET")
	reportsAPI.HandleFunc("/sales/csv", reportHandler.SalesCSV).Methods("GET")
	reportsAPI.HandleFunc("/credits", reportHandler.CreditsReport).Methods("GET")
	reportsAPI.HandleFunc("/credits/csv", reportHandler.CreditsCSV).Methods("GET")
	reportsAPI.HandleFunc("/expenses", reportHandler.ExpensesReport).Methods("GET")
	reportsAPI.HandleFunc("/expenses/csv", reportHandler.ExpensesCSV).Methods("GET")
	reportsAPI.HandleFunc("/inventory", reportHandler.InventoryReport).Methods("GET")
	reportsAPI.HandleFunc("/inventory/csv", reportHandler.InventoryCSV).Methods("GET")
	reportsAPI.HandleFunc("/summary", reportHandler.FinancialSummary).Methods("GET")
	reportsAPI.HandleFunc("/summary/pdf", reportHandler.FinancialSummaryPDF).Methods("GET")
	reportsAPI.HandleFunc("/statements", reportHandler.StatementsZip).Methods("GET")
	reportsAPI.HandleFunc("/statements/{id}", reportHandler.CustomerStatementPDF).Methods("GET")

	// Admin surface
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.RequireAdmin)
	adminAPI.HandleFunc("/credentials", userHandler.UpdateCredentials).Methods("PUT")
	adminAPI.HandleFunc("/reset", systemHandler.Reset).Methods("POST")

	return r
}
