package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// User status
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	// Role names
	RoleAdmin  = "admin"
	RoleSeller = "seller"

	// Session lifecycle: absolute session lifetime and sweep interval.
	SessionMaxAgeHours       = 8
	SessionSweepIntervalSecs = 60

	// Database table names
	TableUsers     = "users"
	TableRoles     = "roles"
	TableSessions  = "sessions"
	TableClients   = "clients"
	TableSuppliers = "suppliers"
	TableProducts  = "products"
	TableSales     = "sales"
	TableSaleItems = "sale_items"
)

// Permission codes enforced on resource routes.
const (
	PermClientsRead    = "CLIENTS_READ"
	PermClientsCreate  = "CLIENTS_CREATE"
	PermClientsUpdate  = "CLIENTS_UPDATE"
	PermClientsDelete  = "CLIENTS_DELETE"
	PermSuppliersRead  = "SUPPLIERS_READ"
	PermSuppliersWrite = "SUPPLIERS_WRITE"
	PermProductsRead   = "PRODUCTS_READ"
	PermProductsCreate = "PRODUCTS_CREATE"
	PermProductsUpdate = "PRODUCTS_UPDATE"
	PermProductsDelete = "PRODUCTS_DELETE"
	PermSalesRead      = "SALES_READ"
	PermSalesCreate    = "SALES_CREATE"
	PermSalesUpdate    = "SALES_UPDATE"
	PermSalesDelete    = "SALES_DELETE"
	PermUsersManage    = "USERS_MANAGE"
	PermReportsRead    = "REPORTS_READ"
)
