package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Operator tool: wipes the running server's ledgers through the admin reset
// endpoint. Appointments are kept.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Store Data")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL BUSINESS DATA on the target server!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all products and restore default categories")
	fmt.Println("  - Delete all sales and reset the sale invoice counter")
	fmt.Println("  - Delete all credits, payments and credit customers")
	fmt.Println("  - Delete all expenses")
	fmt.Println()
	fmt.Println("Appointments are NOT touched.")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	baseURL := getEnv("API_URL", "http://localhost:8080")
	username := getEnv("ADMIN_USERNAME", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	token, err := login(baseURL, username, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/admin/reset", nil)
	if err != nil {
		log.Fatalf("Build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Reset request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Reset returned status %d", resp.StatusCode)
	}

	fmt.Println()
	fmt.Println("Store data reset. All invoice counters start over.")
}

func login(baseURL, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("empty token in response")
	}
	return out.Token, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
