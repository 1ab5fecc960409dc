package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-backend/internal/auth"
	"salon-backend/internal/config"
	"salon-backend/internal/events"
	"salon-backend/internal/handlers"
	"salon-backend/internal/health"
	"salon-backend/internal/middleware"
	"salon-backend/internal/models"
	"salon-backend/internal/repositories"
	"salon-backend/internal/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "salon-backend-test"

	inventoryRepo := repositories.NewInventoryRepository()
	salesRepo := repositories.NewSalesRepository()
	creditRepo := repositories.NewCreditRepository()
	expenseRepo := repositories.NewExpenseRepository()
	appointmentRepo := repositories.NewAppointmentRepository()
	userRepo := repositories.NewUserRepository()

	jwtManager := auth.NewJWTManager(cfg)
	guard := services.NewStoreGuard()
	hub := events.NewHub()

	inventoryService := services.NewInventoryService(inventoryRepo)
	salesService := services.NewSalesService(salesRepo, inventoryService, guard)
	creditService := services.NewCreditService(creditRepo, inventoryService, salesService, guard)
	expenseService := services.NewExpenseService(expenseRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	userService := services.NewUserService(userRepo, jwtManager)
	reportService := services.NewReportService(inventoryRepo, salesRepo, creditRepo, expenseRepo)
	systemService := services.NewSystemService(inventoryRepo, salesRepo, creditRepo, expenseRepo, guard)

	if err := userService.SeedDefaults(context.Background(), "admin", "admin-pass", "clerk", "clerk-pass"); err != nil {
		t.Fatalf("seed users: %v", err)
	}

	router := NewRouter(
		handlers.NewAuthHandler(userService),
		handlers.NewUserHandler(userService),
		handlers.NewProductHandler(inventoryService, nil),
		handlers.NewSaleHandler(salesService),
		handlers.NewCreditHandler(creditService),
		handlers.NewExpenseHandler(expenseService),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewReportHandler(reportService),
		handlers.NewSystemHandler(systemService),
		handlers.NewHealthHandler(health.NewHealthChecker()),
		hub,
		middleware.NewAuthMiddleware(jwtManager, userRepo),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if auth.Token == "" {
		t.Fatal("login returned empty token")
	}
	return auth.Token
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(models.LoginRequest{Username: "admin", Password: "wrong"})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/api/products", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without token", resp.StatusCode)
	}
}

func TestClerkCanSellButNotAdminister(t *testing.T) {
	srv := newTestServer(t)
	clerk := login(t, srv, "clerk", "clerk-pass")

	// Clerk can create products and record sales.
	productBody, _ := json.Marshal(models.CreateProductRequest{
		Code: "SH-01", Name: "Shampoo", Category: "2", Stock: 10, MinStock: 2, CostPrice: 4, SalePrice: 9,
	})
	resp := doRequest(t, srv, http.MethodPost, "/api/products", clerk, productBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("clerk create product status = %d, want 201", resp.StatusCode)
	}
	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		t.Fatalf("decode product: %v", err)
	}

	saleBody, _ := json.Marshal(models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: product.ID, Quantity: 1, Price: 9}},
		PaymentMethod: models.PaymentCash,
	})
	resp = doRequest(t, srv, http.MethodPost, "/api/sales", clerk, saleBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("clerk create sale status = %d, want 201", resp.StatusCode)
	}
	var sale models.Sale
	if err := json.NewDecoder(resp.Body).Decode(&sale); err != nil {
		t.Fatalf("decode sale: %v", err)
	}
	if sale.InvoiceNumber != "V000001" {
		t.Errorf("invoice = %q, want V000001", sale.InvoiceNumber)
	}

	// Admin-only surfaces reject the clerk.
	cancelBody, _ := json.Marshal(models.CancelSaleRequest{Reason: "nope"})
	for _, attempt := range []struct {
		method, path string
		body         []byte
	}{
		{http.MethodPost, "/api/sales/" + sale.ID + "/cancel", cancelBody},
		{http.MethodGet, "/api/reports/summary", nil},
		{http.MethodPost, "/api/admin/reset", nil},
	} {
		resp := doRequest(t, srv, attempt.method, attempt.path, clerk, attempt.body)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("%s %s as clerk: status = %d, want 403", attempt.method, attempt.path, resp.StatusCode)
		}
	}
}

func TestAdminCancelAndReports(t *testing.T) {
	srv := newTestServer(t)
	admin := login(t, srv, "admin", "admin-pass")

	productBody, _ := json.Marshal(models.CreateProductRequest{
		Code: "SH-01", Name: "Shampoo", Category: "2", Stock: 10, MinStock: 2, CostPrice: 4, SalePrice: 9,
	})
	resp := doRequest(t, srv, http.MethodPost, "/api/products", admin, productBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create product status = %d", resp.StatusCode)
	}
	var product models.Product
	json.NewDecoder(resp.Body).Decode(&product)

	saleBody, _ := json.Marshal(models.CreateSaleRequest{
		CustomerName:  "Maria",
		Items:         []models.SaleItem{{ProductID: product.ID, Quantity: 2, Price: 9}},
		PaymentMethod: models.PaymentCard,
	})
	resp = doRequest(t, srv, http.MethodPost, "/api/sales", admin, saleBody)
	var sale models.Sale
	json.NewDecoder(resp.Body).Decode(&sale)

	cancelBody, _ := json.Marshal(models.CancelSaleRequest{Reason: "returned"})
	resp = doRequest(t, srv, http.MethodPost, "/api/sales/"+sale.ID+"/cancel", admin, cancelBody)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("cancel status = %d, want 204", resp.StatusCode)
	}

	resp = doRequest(t, srv, http.MethodGet, "/api/reports/summary", admin, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("summary status = %d, want 200", resp.StatusCode)
	}
	var summary services.FinancialSummaryData
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.TotalRevenue != 0 {
		t.Errorf("revenue = %v, want 0 after cancellation", summary.TotalRevenue)
	}
}

func TestCredentialRotationInvalidatesNothingButChecksFreshAccount(t *testing.T) {
	srv := newTestServer(t)
	admin := login(t, srv, "admin", "admin-pass")

	rotateBody, _ := json.Marshal(models.UpdateCredentialsRequest{
		Role: models.RoleClerk, Username: "cajera", Password: "new-pass",
	})
	resp := doRequest(t, srv, http.MethodPut, "/api/admin/credentials", admin, rotateBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rotate status = %d, want 200", resp.StatusCode)
	}

	// Old clerk credentials stop working, new ones do.
	body, _ := json.Marshal(models.LoginRequest{Username: "clerk", Password: "clerk-pass"})
	oldResp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	defer oldResp.Body.Close()
	if oldResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("old credentials status = %d, want 401", oldResp.StatusCode)
	}

	login(t, srv, "cajera", "new-pass")
}

func TestHealthAndMetricsArePublic(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/metrics"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, resp.StatusCode)
		}
	}
}
