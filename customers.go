package petkeep

import (
	"context"
	"fmt"
)

// CustomersService handles customer accounts.
type CustomersService struct {
	client *Client
}

// CustomerSignupRequest is the request for registering a customer.
type CustomerSignupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// CustomerUpdateRequest is the request for updating a customer profile.
// Empty fields are left unchanged.
type CustomerUpdateRequest struct {
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ChangePasswordRequest is the request for changing the current password.
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// customerPage is the paginated envelope for customer listings.
type customerPage struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Customer `json:"results"`
}

// Signup registers a new customer account. No session is created; the
// caller logs in separately.
func (s *CustomersService) Signup(ctx context.Context, req CustomerSignupRequest) (*Customer, error) {
	var resp Customer
	if err := s.client.post(ctx, "/customers/signup/", req, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns all customers.
func (s *CustomersService) List(ctx context.Context) ([]Customer, error) {
	var page customerPage
	if err := s.client.get(ctx, "/customers/", true, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Get retrieves a customer by ID.
func (s *CustomersService) Get(ctx context.Context, id int) (*Customer, error) {
	var resp Customer
	if err := s.client.get(ctx, fmt.Sprintf("/customers/%d/", id), true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update updates a customer's profile. Customers can only update their own.
func (s *CustomersService) Update(ctx context.Context, id int, req CustomerUpdateRequest) (*Customer, error) {
	var resp Customer
	if err := s.client.put(ctx, fmt.Sprintf("/customers/%d/update/", id), req, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete deactivates a customer account (soft delete).
func (s *CustomersService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/customers/%d/delete/", id), true)
}

// ChangePassword changes the authenticated customer's password.
func (s *CustomersService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return s.client.post(ctx, "/customers/change-password/", req, true, nil)
}
