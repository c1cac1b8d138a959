package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/musclemap/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testSecretKey = "test-secret-key-0123456789abcdefghijklmnop"
	testPassword  = "StrongPass1"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()
	return newTestAppWithConfig(t, HandlerConfig{})
}

func newTestAppWithConfig(t *testing.T, cfg HandlerConfig) (*fiber.App, *Handler) {
	t.Helper()

	database := openTestDatabase(t)
	cfg.SecretKey = testSecretKey
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	handler, err := NewHandler(database, cfg)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.authService = handler.authService.WithHashCost(bcrypt.MinCost)

	return NewApp(handler, nil), handler
}

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "musclemap-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, cookie string) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response, responseBody
}

func decodeJSON(t *testing.T, body []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response %q: %v", string(body), err)
	}
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	payload := map[string]string{}
	decodeJSON(t, body, &payload)
	return payload["error"]
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func registerAndExtractAuthCookie(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response, body := doJSON(t, app, http.MethodPost, "/api/auth/register", credentialsPayload{
		Email:    email,
		Password: testPassword,
	}, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d: %s", response.StatusCode, body)
	}

	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected auth cookie after register")
	}
	return cookie.Name + "=" + cookie.Value
}

func weightReductionProfile() profilePayload {
	return profilePayload{
		Age:           30,
		HeightCm:      180,
		WeightKg:      80,
		Gender:        "male",
		ActivityLevel: "sedentary",
		Goal:          "weight_reduction",
		Experience:    "beginner",
	}
}

func onboardTestUser(t *testing.T, app *fiber.App, email string, profile profilePayload) string {
	t.Helper()

	cookie := registerAndExtractAuthCookie(t, app, email)
	response, body := doJSON(t, app, http.MethodPost, "/api/profile", profile, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected onboarding status 201, got %d: %s", response.StatusCode, body)
	}
	return cookie
}

func greatWeekCheckin(weight float64) checkinPayload {
	return checkinPayload{
		CurrentWeight:    weight,
		DietAdherence:    "great",
		StrengthProgress: "got_stronger",
		EnergyLevels:     "high",
		SleepQuality:     "great",
	}
}
