// Package seed loads the demonstration users and properties into the stores.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staykonnect/internal/cryptox"
	"github.com/dmitrijs2005/staykonnect/internal/models"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/properties"
	"github.com/dmitrijs2005/staykonnect/internal/repositories/users"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Users      []UserSeed     `yaml:"users"`
	Properties []PropertySeed `yaml:"properties"`
}

type UserSeed struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// PropertySeed refers to its owner by email.
type PropertySeed struct {
	Owner       string   `yaml:"owner"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	City        string   `yaml:"city"`
	Address     string   `yaml:"address"`
	Type        string   `yaml:"type"`
	Capacity    int      `yaml:"capacity"`
	Bedrooms    int      `yaml:"bedrooms"`
	Bathrooms   int      `yaml:"bathrooms"`
	Price       float64  `yaml:"price"`
	Amenities   []string `yaml:"amenities"`
}

// Summary reports how many records a Load registered.
type Summary struct {
	Users      int
	Properties int
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return &c, nil
}

// Default returns the embedded demonstration catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load registers every user, then every property, through the stores so all
// indexes are populated. It stops at the first failure.
func Load(ctx context.Context, c *Catalog, us users.Repository, ps properties.Repository, hasher cryptox.Hasher) (Summary, error) {
	var sum Summary
	now := time.Now()

	for _, s := range c.Users {
		role, err := models.ParseRole(s.Role)
		if err != nil {
			return sum, fmt.Errorf("seed user %s: %w", s.Email, err)
		}
		_, err = us.Register(ctx, &models.User{
			DisplayName:    s.Name,
			Email:          s.Email,
			Phone:          s.Phone,
			PasswordDigest: hasher.Hash([]byte(s.Password)),
			Role:           role,
			RegisteredOn:   now,
		})
		if err != nil {
			return sum, fmt.Errorf("seed user %s: %w", s.Email, err)
		}
		sum.Users++
	}

	for _, s := range c.Properties {
		owner, ok := us.FindByEmail(ctx, s.Owner)
		if !ok {
			return sum, fmt.Errorf("seed property %q: unknown owner %s", s.Title, s.Owner)
		}
		p := models.NewProperty()
		p.OwnerID = owner.ID
		p.Title = s.Title
		p.Description = s.Description
		p.City = s.City
		p.Address = s.Address
		p.PropertyType = s.Type
		p.Capacity = s.Capacity
		p.Bedrooms = s.Bedrooms
		p.Bathrooms = s.Bathrooms
		p.PricePerNight = s.Price
		for _, a := range s.Amenities {
			p.AddAmenity(a)
		}
		if _, err := ps.Register(ctx, p); err != nil {
			return sum, fmt.Errorf("seed property %q: %w", s.Title, err)
		}
		sum.Properties++
	}
	return sum, nil
}
