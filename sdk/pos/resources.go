package pos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Role is the canonical {id, name} shape. The backend historically emits
// roles either as full objects or as bare numeric IDs; both representations
// are normalized here, at the service boundary, and never leak past it.
type Role struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (r *Role) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' {
		type plain Role
		var p plain
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return err
		}
		*r = Role(p)
		return nil
	}
	var id uint
	if err := json.Unmarshal(trimmed, &id); err != nil {
		return fmt.Errorf("role must be an object or a numeric id: %w", err)
	}
	*r = Role{ID: id}
	return nil
}

// roleNames projects normalized roles to their names, dropping roles the
// backend sent as bare IDs without a resolvable name.
func roleNames(roles []Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		if role.Name != "" {
			names = append(names, role.Name)
		}
	}
	return names
}

// Number decodes numeric fields that a form may have cleared: null and the
// empty string coerce to 0 instead of failing, so "empty" and "zero" are
// indistinguishable for numeric attributes.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" || string(trimmed) == `""` {
		*n = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		trimmed = []byte(s)
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", string(data), err)
	}
	*n = Number(f)
	return nil
}

// Customer is the "client" resource: a buyer on record.
type Customer struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Supplier struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

type Product struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Price       Number `json:"price"`
	Cost        Number `json:"cost"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"minStock"`
	SupplierIDs []uint `json:"supplierIds"`
	LowStock    bool   `json:"lowStock"`
}

type SaleItem struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice Number `json:"unitPrice"`
	Subtotal  Number `json:"subtotal"`
}

type Sale struct {
	ID       uint       `json:"id"`
	Number   string     `json:"number"`
	ClientID uint       `json:"clientId"`
	UserID   uint       `json:"userId"`
	Items    []SaleItem `json:"items"`
	Total    Number     `json:"total"`
	SoldAt   time.Time  `json:"soldAt"`
}

type User struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	RoleIDs []uint `json:"roleIds"`
	Roles   []Role `json:"roles,omitempty"`
}

func NewCustomerStore(client *Client) *Store[Customer] {
	return NewStore(client, "/clients", func(c Customer) uint { return c.ID })
}

func NewSupplierStore(client *Client) *Store[Supplier] {
	return NewStore(client, "/suppliers", func(s Supplier) uint { return s.ID })
}

func NewProductStore(client *Client) *Store[Product] {
	return NewStore(client, "/products", func(p Product) uint { return p.ID })
}

func NewSaleStore(client *Client) *Store[Sale] {
	return NewStore(client, "/sales", func(s Sale) uint { return s.ID })
}

func NewUserStore(client *Client) *Store[User] {
	return NewStore(client, "/users", func(u User) uint { return u.ID })
}
