package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Prithwiraj731/Money-Miners/internal/models"
	"github.com/Prithwiraj731/Money-Miners/internal/utils"
)

func TestSubmitPurchaseRequiresTransactionID(t *testing.T) {
	env := newTestEnv(t, true)
	token := userToken(t, env, seedUser(t, env, "a@x.com", "secret123"))

	resp, body := env.request(t, http.MethodPost, "/api/purchases/submit", map[string]interface{}{
		"course_id": "btc-master",
	}, token)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "Transaction ID is required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestSubmitPurchaseForcesPendingStatus(t *testing.T) {
	env := newTestEnv(t, true)
	user := seedUser(t, env, "a@x.com", "secret123")
	token := userToken(t, env, user)

	// A client claiming "success" up front still gets a pending row.
	resp, body := env.request(t, http.MethodPost, "/api/purchases/submit", map[string]interface{}{
		"course_id":      "btc-master",
		"full_name":      "Test User",
		"email":          "a@x.com",
		"phone":          "+911234567890",
		"transaction_id": "UTR123456789",
		"status":         "success",
	}, token)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", resp.StatusCode, body)
	}

	var purchase models.Purchase
	if err := env.db.Where("user_id = ?", user.ID).First(&purchase).Error; err != nil {
		t.Fatalf("purchase row not created: %v", err)
	}

	if purchase.Status != models.PurchaseStatusPending {
		t.Fatalf("status = %q, want pending", purchase.Status)
	}
	if purchase.CourseTitle != "BTC Master" {
		t.Fatalf("course title not filled from catalog: %q", purchase.CourseTitle)
	}
	if purchase.Amount != 8000 {
		t.Fatalf("amount not filled from catalog: %v", purchase.Amount)
	}
}

func TestSubmitPurchaseUnknownCourse(t *testing.T) {
	env := newTestEnv(t, true)
	token := userToken(t, env, seedUser(t, env, "a@x.com", "secret123"))

	resp, _ := env.request(t, http.MethodPost, "/api/purchases/submit", map[string]interface{}{
		"course_id":      "no-such-course",
		"transaction_id": "UTR1",
	}, token)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown course without title, got %d", resp.StatusCode)
	}
}

func TestSubmitPurchaseNotifiesAdminAndUser(t *testing.T) {
	env := newTestEnv(t, true)
	token := userToken(t, env, seedUser(t, env, "a@x.com", "secret123"))

	resp, _ := env.request(t, http.MethodPost, "/api/purchases/submit", map[string]interface{}{
		"course_id":      "btc-master",
		"full_name":      "Test User",
		"email":          "a@x.com",
		"transaction_id": "UTR123456789",
	}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	env.waitForMail()

	sent := env.mail.sent()
	if len(sent) != 2 {
		t.Fatalf("expected 2 notification emails, got %d", len(sent))
	}

	recipients := map[string]bool{}
	for _, msg := range sent {
		recipients[msg.To] = true
	}
	if !recipients["admin@example.com"] || !recipients["a@x.com"] {
		t.Fatalf("unexpected recipients: %v", recipients)
	}
}

func TestGetUserPurchasesOnlyOwn(t *testing.T) {
	env := newTestEnv(t, true)
	alice := seedUser(t, env, "alice@x.com", "secret123")
	bob := models.User{FullName: "Bob", Username: "bob", Email: "bob@x.com", PasswordHash: "x"}
	if err := env.db.Create(&bob).Error; err != nil {
		t.Fatalf("failed to seed second user: %v", err)
	}

	for _, u := range []models.User{alice, bob} {
		p := models.Purchase{UserID: u.ID, CourseID: "btc-master", CourseTitle: "BTC Master",
			Email: u.Email, TransactionID: "UTR-" + u.Username, Status: models.PurchaseStatusPending}
		if err := env.db.Create(&p).Error; err != nil {
			t.Fatalf("failed to seed purchase: %v", err)
		}
	}

	_, body := env.request(t, http.MethodGet, "/api/purchases/user", nil, userToken(t, env, alice))
	purchases, _ := body["purchases"].([]interface{})
	if len(purchases) != 1 {
		t.Fatalf("expected 1 purchase, got %d", len(purchases))
	}

	row := purchases[0].(map[string]interface{})
	if row["email"] != "alice@x.com" {
		t.Fatalf("got someone else's purchase: %v", row["email"])
	}
}

// TestManualVerificationEndToEnd walks the whole storefront flow: OTP,
// registration, login, cart, purchase claim, admin approval.
func TestManualVerificationEndToEnd(t *testing.T) {
	env := newTestEnv(t, true)

	// Request an OTP in mock mode and read the code from the store.
	resp, _ := env.request(t, http.MethodPost, "/api/auth/send-otp",
		map[string]string{"email": "a@x.com"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send-otp: expected 200, got %d", resp.StatusCode)
	}

	var verification models.EmailVerification
	if err := env.db.Where("email = ?", "a@x.com").Order("created_at desc").First(&verification).Error; err != nil {
		t.Fatalf("no verification row: %v", err)
	}

	resp, _ = env.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"full_name": "A X", "username": "ax", "email": "a@x.com",
		"phone": "+911234567890", "password": "secret123", "otp": verification.OTP,
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}

	resp, body := env.request(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@x.com", "password": "secret123"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	token := body["token"].(string)

	resp, _ = env.request(t, http.MethodPost, "/api/cart/add",
		map[string]string{"courseId": "btc-master"}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("cart add: expected 201, got %d", resp.StatusCode)
	}

	resp, body = env.request(t, http.MethodPost, "/api/purchases/submit", map[string]interface{}{
		"course_id":      "btc-master",
		"full_name":      "A X",
		"email":          "a@x.com",
		"phone":          "+911234567890",
		"transaction_id": "UTR123456789",
	}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d", resp.StatusCode)
	}

	purchase := body["purchase"].(map[string]interface{})
	if purchase["status"] != models.PurchaseStatusPending {
		t.Fatalf("submitted purchase status = %v, want pending", purchase["status"])
	}
	purchaseID := purchase["id"].(string)

	adminToken, err := utils.GenerateAdminToken(env.cfg.JWTSecret, env.cfg.AdminEmail, env.cfg.AdminTokenTTL)
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}

	resp, body = env.request(t, http.MethodPut, "/api/admin/purchases/status", map[string]string{
		"purchaseId": purchaseID,
		"status":     models.PurchaseStatusSuccess,
	}, adminToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status update: expected 200, got %d: %v", resp.StatusCode, body)
	}
	if !strings.Contains(body["message"].(string), "success") {
		t.Fatalf("unexpected update message: %v", body["message"])
	}

	_, body = env.request(t, http.MethodGet, "/api/purchases/user", nil, token)
	purchases := body["purchases"].([]interface{})
	if len(purchases) != 1 {
		t.Fatalf("expected 1 purchase, got %d", len(purchases))
	}
	if purchases[0].(map[string]interface{})["status"] != models.PurchaseStatusSuccess {
		t.Fatalf("purchase not updated to success: %v", purchases[0])
	}
}
