package petkeep

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestAuthService_Login(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/auth/login/" {
			t.Errorf("expected /auth/login/, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry an Authorization header")
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ana@example.com" {
			t.Errorf("expected email in body, got %q", body["email"])
		}

		resp := map[string]interface{}{
			"message": "Login successful.",
			"token":   "tok-123",
			"user": map[string]interface{}{
				"id":         7,
				"email":      "ana@example.com",
				"full_name":  "Ana Souza",
				"phone":      "+55 11 91234-5678",
				"user_type":  "customer",
				"is_active":  true,
				"created_at": "2024-01-01T00:00:00Z",
				"updated_at": "2024-01-01T00:00:00Z",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	ctx := context.Background()
	resp, err := client.Auth.Login(ctx, "ana@example.com", "secret")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Token != "tok-123" {
		t.Errorf("expected token 'tok-123', got %q", resp.Token)
	}
	if resp.User.UserType != UserTypeCustomer {
		t.Errorf("expected user type customer, got %q", resp.User.UserType)
	}

	// The token must be persisted before Login returns.
	token, err := store.Token(ctx)
	if err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("expected stored token 'tok-123', got %q", token)
	}
}

func TestAuthService_Login_FailureLeavesStoreUntouched(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"non_field_errors": []string{"Unable to log in with provided credentials."},
		})
	})

	ctx := context.Background()
	if err := store.SetToken(ctx, "prior-token"); err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}

	_, err := client.Auth.Login(ctx, "ana@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %T", err)
	}
	if got := apiErr.NonField(); len(got) != 1 || got[0] != "Unable to log in with provided credentials." {
		t.Errorf("unexpected non-field errors: %v", got)
	}

	// A failed login must not clear a previously stored token.
	token, _ := store.Token(ctx)
	if token != "prior-token" {
		t.Errorf("expected prior token to survive, got %q", token)
	}
}

func TestAuthService_Logout(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/logout/" {
			t.Errorf("expected /auth/logout/, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Token tok-123" {
			t.Errorf("expected Token auth header, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	if err := client.Auth.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _ := store.Token(ctx)
	if token != "" {
		t.Errorf("expected token cleared after logout, got %q", token)
	}
}

func TestAuthService_Logout_ClearsTokenOnServerError(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	// The server failure is discarded; local clearing still runs.
	if err := client.Auth.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, _ := store.Token(ctx)
	if token != "" {
		t.Errorf("expected token cleared despite server error, got %q", token)
	}
}

func TestAuthService_Me(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me/" {
			t.Errorf("expected /auth/me/, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Token tok-123" {
			t.Errorf("expected Token auth header, got %q", r.Header.Get("Authorization"))
		}

		resp := map[string]interface{}{
			"id":        7,
			"email":     "ana@example.com",
			"full_name": "Ana Souza",
			"user_type": "customer",
			"is_active": true,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	user, err := client.Auth.Me(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Email != "ana@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}
