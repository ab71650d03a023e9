package petkeep

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// PetSittersService handles petsitter accounts and the petsitter directory.
type PetSittersService struct {
	client *Client
}

// PetSitterSignupRequest is the request for registering a petsitter.
type PetSitterSignupRequest struct {
	FullName        string        `json:"full_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Password        string        `json:"password"`
	ConfirmPassword string        `json:"confirm_password"`
	Location        string        `json:"location"`
	About           string        `json:"about"`
	AnimalTypes     []AnimalType  `json:"animal_types"`
	ServiceTypes    []ServiceType `json:"service_types"`
	OtherAnimals    string        `json:"other_animals,omitempty"`
}

// PetSitterUpdateRequest is the request for updating a petsitter profile.
// Zero-valued fields are left unchanged.
type PetSitterUpdateRequest struct {
	FullName     string        `json:"full_name,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Location     string        `json:"location,omitempty"`
	About        string        `json:"about,omitempty"`
	AnimalTypes  []AnimalType  `json:"animal_types,omitempty"`
	ServiceTypes []ServiceType `json:"service_types,omitempty"`
	OtherAnimals string        `json:"other_animals,omitempty"`
}

// ListOptions filter the petsitter directory. An empty filter set means "no
// constraint", not "match none".
type ListOptions struct {
	// Search is a free-text term matched against name, location, and about.
	Search string
	// AnimalTypes restricts results to sitters handling all given animals.
	AnimalTypes []AnimalType
	// ServiceTypes restricts results to sitters offering all given services.
	ServiceTypes []ServiceType
}

// encode serializes the options as a query string. Filter sets are
// comma-joined machine codes, order-preserving, and omitted entirely when
// empty. Returns "" when no option is set.
func (o *ListOptions) encode() string {
	if o == nil {
		return ""
	}

	var params []string
	if o.Search != "" {
		params = append(params, "search="+url.QueryEscape(o.Search))
	}
	if len(o.AnimalTypes) > 0 {
		codes := make([]string, len(o.AnimalTypes))
		for i, a := range o.AnimalTypes {
			codes[i] = url.QueryEscape(string(a))
		}
		params = append(params, "animal_type="+strings.Join(codes, ","))
	}
	if len(o.ServiceTypes) > 0 {
		codes := make([]string, len(o.ServiceTypes))
		for i, s := range o.ServiceTypes {
			codes[i] = url.QueryEscape(string(s))
		}
		params = append(params, "service_type="+strings.Join(codes, ","))
	}
	return strings.Join(params, "&")
}

// PetSitterPage is the paginated envelope for directory listings.
type PetSitterPage struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []PetSitter `json:"results"`
}

// Signup registers a new petsitter account. No session is created; the
// caller logs in separately.
func (s *PetSittersService) Signup(ctx context.Context, req PetSitterSignupRequest) (*PetSitter, error) {
	var resp PetSitter
	if err := s.client.post(ctx, "/petsitters/signup/", req, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// List returns the petsitters matching opts, discarding pagination
// metadata. Consumers that need the total count or cursors use ListPage.
//
// Example:
//
//	sitters, err := client.PetSitters.List(ctx, &petkeep.ListOptions{
//	    Search:      "são paulo",
//	    AnimalTypes: []petkeep.AnimalType{petkeep.AnimalDog, petkeep.AnimalCat},
//	})
func (s *PetSittersService) List(ctx context.Context, opts *ListOptions) ([]PetSitter, error) {
	page, err := s.ListPage(ctx, opts)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// ListPage returns one page of the petsitter directory with its pagination
// envelope intact.
func (s *PetSittersService) ListPage(ctx context.Context, opts *ListOptions) (*PetSitterPage, error) {
	path := "/petsitters/"
	if q := opts.encode(); q != "" {
		path += "?" + q
	}

	var page PetSitterPage
	if err := s.client.get(ctx, path, true, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get retrieves a petsitter by ID.
func (s *PetSittersService) Get(ctx context.Context, id int) (*PetSitter, error) {
	var resp PetSitter
	if err := s.client.get(ctx, fmt.Sprintf("/petsitters/%d/", id), true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update updates a petsitter's profile. Petsitters can only update their own.
func (s *PetSittersService) Update(ctx context.Context, id int, req PetSitterUpdateRequest) (*PetSitter, error) {
	var resp PetSitter
	if err := s.client.put(ctx, fmt.Sprintf("/petsitters/%d/update/", id), req, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete deactivates a petsitter account (soft delete).
func (s *PetSittersService) Delete(ctx context.Context, id int) error {
	return s.client.delete(ctx, fmt.Sprintf("/petsitters/%d/delete/", id), true)
}
