// Package seed loads initial data from YAML fixtures.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/venda-inc/venda/internal/domain/client"
	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/domain/supplier"
	"github.com/venda-inc/venda/internal/domain/user"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// Fixtures is the YAML shape of a seed file.
type Fixtures struct {
	Roles []struct {
		Name        string   `yaml:"name"`
		Permissions []string `yaml:"permissions"`
	} `yaml:"roles"`
	Users []struct {
		Name     string   `yaml:"name"`
		Email    string   `yaml:"email"`
		Password string   `yaml:"password"`
		Roles    []string `yaml:"roles"`
	} `yaml:"users"`
	Clients []struct {
		Name    string `yaml:"name"`
		Email   string `yaml:"email"`
		Phone   string `yaml:"phone"`
		Address string `yaml:"address"`
	} `yaml:"clients"`
	Suppliers []struct {
		Name    string `yaml:"name"`
		Email   string `yaml:"email"`
		Phone   string `yaml:"phone"`
		Address string `yaml:"address"`
		TaxID   string `yaml:"tax_id"`
	} `yaml:"suppliers"`
	Products []struct {
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		SKU         string  `yaml:"sku"`
		Price       float64 `yaml:"price"`
		Cost        float64 `yaml:"cost"`
		Stock       int     `yaml:"stock"`
		MinStock    int     `yaml:"min_stock"`
		Suppliers   []uint  `yaml:"supplier_ids"`
	} `yaml:"products"`
}

// Seeder inserts fixture data, skipping records that already exist so the
// seed command stays idempotent.
type Seeder struct {
	users     user.Repository
	roles     user.RoleRepository
	clients   client.Repository
	suppliers supplier.Repository
	products  product.Repository
	hasher    user.PasswordHasher
	logger    logger.Interface
}

func NewSeeder(
	users user.Repository,
	roles user.RoleRepository,
	clients client.Repository,
	suppliers supplier.Repository,
	products product.Repository,
	hasher user.PasswordHasher,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		users:     users,
		roles:     roles,
		clients:   clients,
		suppliers: suppliers,
		products:  products,
		hasher:    hasher,
		logger:    log,
	}
}

// LoadFixtures parses a YAML seed file.
func LoadFixtures(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &fixtures, nil
}

// Run applies the fixtures in dependency order: roles, users, then the
// catalog resources.
func (s *Seeder) Run(ctx context.Context, fixtures *Fixtures) error {
	roleIDs, err := s.seedRoles(ctx, fixtures)
	if err != nil {
		return err
	}
	if err := s.seedUsers(ctx, fixtures, roleIDs); err != nil {
		return err
	}
	if err := s.seedClients(ctx, fixtures); err != nil {
		return err
	}
	if err := s.seedSuppliers(ctx, fixtures); err != nil {
		return err
	}
	if err := s.seedProducts(ctx, fixtures); err != nil {
		return err
	}

	s.logger.Infow("seed completed",
		"roles", len(fixtures.Roles),
		"users", len(fixtures.Users),
		"clients", len(fixtures.Clients),
		"suppliers", len(fixtures.Suppliers),
		"products", len(fixtures.Products),
	)
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context, fixtures *Fixtures) (map[string]uint, error) {
	roleIDs := make(map[string]uint, len(fixtures.Roles))
	for _, entry := range fixtures.Roles {
		existing, err := s.roles.GetByName(ctx, entry.Name)
		if err == nil {
			roleIDs[entry.Name] = existing.ID
			continue
		}

		role, err := user.NewRole(entry.Name, entry.Permissions)
		if err != nil {
			return nil, fmt.Errorf("invalid role fixture %q: %w", entry.Name, err)
		}
		if err := s.roles.Create(ctx, role); err != nil {
			return nil, fmt.Errorf("failed to seed role %q: %w", entry.Name, err)
		}
		roleIDs[entry.Name] = role.ID
		s.logger.Debugw("seeded role", "name", entry.Name)
	}
	return roleIDs, nil
}

func (s *Seeder) seedUsers(ctx context.Context, fixtures *Fixtures, roleIDs map[string]uint) error {
	for _, entry := range fixtures.Users {
		if _, err := s.users.GetByEmail(ctx, entry.Email); err == nil {
			continue
		}

		hash, err := s.hasher.Hash(entry.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", entry.Email, err)
		}

		ids := make([]uint, 0, len(entry.Roles))
		for _, name := range entry.Roles {
			id, ok := roleIDs[name]
			if !ok {
				return fmt.Errorf("user fixture %q references unknown role %q", entry.Email, name)
			}
			ids = append(ids, id)
		}

		u, err := user.NewUser(entry.Name, entry.Email, hash, ids)
		if err != nil {
			return fmt.Errorf("invalid user fixture %q: %w", entry.Email, err)
		}
		if err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", entry.Email, err)
		}
		s.logger.Debugw("seeded user", "email", entry.Email)
	}
	return nil
}

func (s *Seeder) seedClients(ctx context.Context, fixtures *Fixtures) error {
	for _, entry := range fixtures.Clients {
		c, err := client.NewClient(entry.Name, entry.Email, entry.Phone, entry.Address)
		if err != nil {
			return fmt.Errorf("invalid client fixture %q: %w", entry.Name, err)
		}
		if err := s.clients.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to seed client %q: %w", entry.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedSuppliers(ctx context.Context, fixtures *Fixtures) error {
	for _, entry := range fixtures.Suppliers {
		sup, err := supplier.NewSupplier(entry.Name, entry.Email, entry.Phone, entry.Address, entry.TaxID)
		if err != nil {
			return fmt.Errorf("invalid supplier fixture %q: %w", entry.Name, err)
		}
		if err := s.suppliers.Create(ctx, sup); err != nil {
			return fmt.Errorf("failed to seed supplier %q: %w", entry.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context, fixtures *Fixtures) error {
	for _, entry := range fixtures.Products {
		if _, err := s.products.GetBySKU(ctx, entry.SKU); err == nil {
			continue
		}

		p, err := product.NewProduct(entry.Name, entry.Description, entry.SKU,
			entry.Price, entry.Cost, entry.Stock, entry.MinStock, entry.Suppliers)
		if err != nil {
			return fmt.Errorf("invalid product fixture %q: %w", entry.SKU, err)
		}
		if err := s.products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", entry.SKU, err)
		}
	}
	return nil
}
