// Package petkeep provides the official Go SDK for the PetKeep API.
//
// PetKeep is a pet-care marketplace connecting pet owners with petsitters
// offering walking, hosting, and sitting services.
package petkeep

import "time"

// UserType discriminates the two account kinds.
type UserType string

const (
	// UserTypeCustomer is a pet-owner account.
	UserTypeCustomer UserType = "customer"
	// UserTypePetSitter is a service-provider account.
	UserTypePetSitter UserType = "petsitter"
)

// AnimalType is a server-defined code for an animal a petsitter handles.
type AnimalType string

const (
	AnimalDog     AnimalType = "dog"
	AnimalCat     AnimalType = "cat"
	AnimalBird    AnimalType = "bird"
	AnimalRabbit  AnimalType = "rabbit"
	AnimalChicken AnimalType = "chicken"
	AnimalHamster AnimalType = "hamster"
	AnimalOther   AnimalType = "other"
)

// ServiceType is a server-defined code for a service modality.
type ServiceType string

const (
	// ServiceKeepSitter is in-home pet sitting.
	ServiceKeepSitter ServiceType = "keepsitter"
	// ServiceKeepHost is hosting at the sitter's home.
	ServiceKeepHost ServiceType = "keephost"
	// ServiceKeepWalk is dog walking.
	ServiceKeepWalk ServiceType = "keepwalk"
)

// User is the identity projection returned by the server at login.
// The client holds only a transient, immutable copy.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	UserType  UserType  `json:"user_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Customer is a pet-owner account projection.
type Customer struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnimalTypeRecord is an animal-type capability of a petsitter: a machine
// code plus its display label. Records are unique by code within one
// petsitter; order is server-determined and preserved.
type AnimalTypeRecord struct {
	ID          int        `json:"id"`
	Code        AnimalType `json:"animal_type"`
	DisplayName string     `json:"display_name"`
}

// ServiceTypeRecord is a service-type offering of a petsitter.
type ServiceTypeRecord struct {
	ID          int         `json:"id"`
	Code        ServiceType `json:"service_type"`
	DisplayName string      `json:"display_name"`
}

// PetSitter is a service-provider account projection.
type PetSitter struct {
	ID           int                 `json:"id"`
	Email        string              `json:"email"`
	FullName     string              `json:"full_name"`
	Phone        string              `json:"phone"`
	IsActive     bool                `json:"is_active"`
	UserType     UserType            `json:"user_type"`
	Location     string              `json:"location"`
	About        string              `json:"about"`
	AnimalTypes  []AnimalTypeRecord  `json:"animal_types"`
	ServiceTypes []ServiceTypeRecord `json:"service_types"`
	// OtherAnimals is a free-text note for uncategorized animal types.
	OtherAnimals *string   `json:"other_animals"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
