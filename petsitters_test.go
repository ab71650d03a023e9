package petkeep

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func sitterJSON(id int, name string) map[string]interface{} {
	return map[string]interface{}{
		"id":        id,
		"email":     strings.ToLower(name) + "@example.com",
		"full_name": name,
		"phone":     "+55 11 90000-0000",
		"is_active": true,
		"user_type": "petsitter",
		"location":  "São Paulo",
		"about":     "Experienced sitter",
		"animal_types": []map[string]interface{}{
			{"id": 1, "animal_type": "dog", "display_name": "Cachorro"},
			{"id": 2, "animal_type": "cat", "display_name": "Gato"},
		},
		"service_types": []map[string]interface{}{
			{"id": 3, "service_type": "keepwalk", "display_name": "KeepWalk"},
		},
		"other_animals": nil,
		"created_at":    "2024-01-01T00:00:00Z",
		"updated_at":    "2024-01-01T00:00:00Z",
	}
}

func pageJSON(sitters ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"count":    len(sitters),
		"next":     nil,
		"previous": nil,
		"results":  sitters,
	}
}

func TestPetSittersService_List(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/petsitters/" {
			t.Errorf("expected /petsitters/, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Token tok-123" {
			t.Errorf("expected Token auth header, got %q", r.Header.Get("Authorization"))
		}
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query parameters, got %q", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pageJSON(sitterJSON(1, "Bruno"), sitterJSON(2, "Carla")))
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	sitters, err := client.PetSitters.List(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pagination metadata is discarded; only the items come back.
	if len(sitters) != 2 {
		t.Fatalf("expected 2 petsitters, got %d", len(sitters))
	}
	if sitters[0].FullName != "Bruno" || sitters[1].FullName != "Carla" {
		t.Errorf("unexpected order: %q, %q", sitters[0].FullName, sitters[1].FullName)
	}
	if len(sitters[0].AnimalTypes) != 2 || sitters[0].AnimalTypes[0].Code != AnimalDog {
		t.Errorf("unexpected animal types: %+v", sitters[0].AnimalTypes)
	}
}

func TestPetSittersService_List_Filters(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("animal_type"); got != "dog,cat" {
			t.Errorf("expected animal_type=dog,cat, got %q", got)
		}
		if got := q.Get("service_type"); got != "keepwalk" {
			t.Errorf("expected service_type=keepwalk, got %q", got)
		}
		if got := q.Get("search"); got != "são paulo" {
			t.Errorf("expected search term, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pageJSON(sitterJSON(1, "Bruno")))
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	_, err := client.PetSitters.List(ctx, &ListOptions{
		Search:       "são paulo",
		AnimalTypes:  []AnimalType{AnimalDog, AnimalCat},
		ServiceTypes: []ServiceType{ServiceKeepWalk},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPetSittersService_List_EmptyFilterSetsOmitted(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// An empty filter set means "no constraint": the parameter must be
		// absent, never sent as an empty string.
		if _, present := r.URL.Query()["animal_type"]; present {
			t.Error("animal_type must be omitted for an empty filter set")
		}
		if _, present := r.URL.Query()["service_type"]; present {
			t.Error("service_type must be omitted for an empty filter set")
		}
		if got := r.URL.Query().Get("search"); got != "rex" {
			t.Errorf("expected search=rex, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pageJSON())
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	sitters, err := client.PetSitters.List(ctx, &ListOptions{
		Search:       "rex",
		AnimalTypes:  []AnimalType{},
		ServiceTypes: nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sitters) != 0 {
		t.Errorf("expected no results, got %d", len(sitters))
	}
}

func TestPetSittersService_List_NoTokenStillDispatches(t *testing.T) {
	dispatched := false
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		dispatched = true
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"detail": "Authentication credentials were not provided.",
		})
	})

	_, err := client.PetSitters.List(context.Background(), nil)
	if !dispatched {
		t.Fatal("expected the request to be dispatched without a token")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %v", err)
	}
	if !apiErr.IsUnauthorized() {
		t.Errorf("expected unauthorized, got status %d", apiErr.StatusCode)
	}
}

func TestPetSittersService_ListPage(t *testing.T) {
	next := "http://localhost:8080/api/v1/petsitters/?page=2"
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		resp := pageJSON(sitterJSON(1, "Bruno"), sitterJSON(2, "Carla"))
		resp["count"] = 5
		resp["next"] = next
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	page, err := client.PetSitters.ListPage(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 5 {
		t.Errorf("expected count 5, got %d", page.Count)
	}
	if page.Next == nil || *page.Next != next {
		t.Errorf("expected next cursor preserved, got %v", page.Next)
	}
	if len(page.Results) != 2 {
		t.Errorf("expected 2 results, got %d", len(page.Results))
	}
}

func TestPetSittersService_Signup(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/petsitters/signup/" {
			t.Errorf("expected /petsitters/signup/, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("signup must not carry an Authorization header")
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		animals, _ := body["animal_types"].([]interface{})
		if len(animals) != 2 {
			t.Errorf("expected 2 animal types in body, got %v", body["animal_types"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sitterJSON(9, "Bruno"))
	})

	sitter, err := client.PetSitters.Signup(context.Background(), PetSitterSignupRequest{
		FullName:        "Bruno Lima",
		Email:           "bruno@example.com",
		Phone:           "+55 11 98765-4321",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		Location:        "Pinheiros, São Paulo",
		About:           "Dog lover",
		AnimalTypes:     []AnimalType{AnimalDog, AnimalCat},
		ServiceTypes:    []ServiceType{ServiceKeepWalk},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sitter.ID != 9 {
		t.Errorf("expected ID 9, got %d", sitter.ID)
	}
}

func TestPetSittersService_Signup_ValidationError(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"email": []string{"This field is required."},
		})
	})

	_, err := client.PetSitters.Signup(context.Background(), PetSitterSignupRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected API error, got %T", err)
	}

	// The server's mapping comes through unmodified.
	if got := apiErr.Field("email"); len(got) != 1 || got[0] != "This field is required." {
		t.Errorf("unexpected email errors: %v", got)
	}
	if !apiErr.IsValidation() {
		t.Errorf("expected validation error, got status %d", apiErr.StatusCode)
	}
}

func TestPetSittersService_Get(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/petsitters/9/" {
			t.Errorf("expected /petsitters/9/, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sitterJSON(9, "Bruno"))
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	sitter, err := client.PetSitters.Get(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sitter.ID != 9 {
		t.Errorf("expected ID 9, got %d", sitter.ID)
	}
}

func TestPetSittersService_Delete(t *testing.T) {
	client, store := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/petsitters/9/delete/" {
			t.Errorf("expected /petsitters/9/delete/, got %s", r.URL.Path)
		}
		// 204 with an empty body must not trip JSON parsing.
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-123")

	if err := client.PetSitters.Delete(ctx, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
