// seed crea el esquema de ventas-flow y lo puebla con datos de demostración:
// un usuario por rol, una bodega con existencias, un cliente y el diario bank
// que usa el workflow automático para registrar pagos.
//
// Uso: go run ./cmd/seed
// Idempotente: el esquema usa IF NOT EXISTS y los datos ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-flow/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-flow/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS partners (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	email                TEXT,
	customer_location_id TEXT NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS warehouses (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	stock_location_id TEXT NOT NULL,
	out_type_id       TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL UNIQUE,
	partner_id        TEXT NOT NULL REFERENCES partners(id),
	warehouse_id      TEXT NOT NULL REFERENCES warehouses(id),
	status            TEXT NOT NULL,
	invoice_status    TEXT NOT NULL,
	amount_total      NUMERIC(18,2) NOT NULL DEFAULT 0,
	manager_reference TEXT,
	auto_workflow     BOOLEAN NOT NULL DEFAULT false,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_lines (
	id         TEXT PRIMARY KEY,
	order_id   TEXT NOT NULL REFERENCES orders(id),
	product_id TEXT NOT NULL,
	name       TEXT NOT NULL,
	uom_id     TEXT NOT NULL,
	quantity   NUMERIC(18,3) NOT NULL,
	unit_price NUMERIC(18,2) NOT NULL,
	seq        BIGSERIAL
);
CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines(order_id);

CREATE TABLE IF NOT EXISTS deliveries (
	id               TEXT PRIMARY KEY,
	order_id         TEXT NOT NULL REFERENCES orders(id),
	origin           TEXT NOT NULL,
	partner_id       TEXT NOT NULL,
	warehouse_id     TEXT NOT NULL,
	location_id      TEXT NOT NULL,
	location_dest_id TEXT NOT NULL,
	picking_type_id  TEXT NOT NULL,
	status           TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_deliveries_order ON deliveries(order_id);

CREATE TABLE IF NOT EXISTS stock_moves (
	id               TEXT PRIMARY KEY,
	delivery_id      TEXT NOT NULL REFERENCES deliveries(id),
	product_id       TEXT NOT NULL,
	name             TEXT NOT NULL,
	uom_id           TEXT NOT NULL,
	quantity         NUMERIC(18,3) NOT NULL,
	done_quantity    NUMERIC(18,3) NOT NULL DEFAULT 0,
	location_id      TEXT NOT NULL,
	location_dest_id TEXT NOT NULL,
	seq              BIGSERIAL
);
CREATE INDEX IF NOT EXISTS idx_stock_moves_delivery ON stock_moves(delivery_id);

CREATE TABLE IF NOT EXISTS invoices (
	id           TEXT PRIMARY KEY,
	order_id     TEXT NOT NULL REFERENCES orders(id),
	number       TEXT NOT NULL,
	partner_id   TEXT NOT NULL,
	status       TEXT NOT NULL,
	amount_total NUMERIC(18,2) NOT NULL DEFAULT 0,
	date         TIMESTAMPTZ NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_invoices_order ON invoices(order_id);

CREATE TABLE IF NOT EXISTS invoice_lines (
	id         TEXT PRIMARY KEY,
	invoice_id TEXT NOT NULL REFERENCES invoices(id),
	product_id TEXT NOT NULL,
	name       TEXT NOT NULL,
	uom_id     TEXT NOT NULL,
	quantity   NUMERIC(18,3) NOT NULL,
	unit_price NUMERIC(18,2) NOT NULL,
	subtotal   NUMERIC(18,2) NOT NULL,
	seq        BIGSERIAL
);
CREATE INDEX IF NOT EXISTS idx_invoice_lines_invoice ON invoice_lines(invoice_id);

CREATE TABLE IF NOT EXISTS payments (
	id           TEXT PRIMARY KEY,
	invoice_id   TEXT NOT NULL REFERENCES invoices(id),
	journal_id   TEXT NOT NULL,
	partner_id   TEXT NOT NULL,
	amount       NUMERIC(18,2) NOT NULL,
	payment_type TEXT NOT NULL,
	method_id    TEXT NOT NULL,
	status       TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS journals (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stocks (
	product_id   TEXT NOT NULL,
	warehouse_id TEXT NOT NULL,
	quantity     NUMERIC(18,3) NOT NULL DEFAULT 0,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (product_id, warehouse_id)
);

CREATE TABLE IF NOT EXISTS config_parameters (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// demoUser usuario de demostración, uno por rol.
type demoUser struct {
	id, email, password, name, role string
}

var demoUsers = []demoUser{
	{"usr-admin", "admin@ventas-flow.local", "admin12345", "Admin General", "admin"},
	{"usr-sale-admin", "gerente@ventas-flow.local", "gerente12345", "Gerente de Ventas", "sale_admin"},
	{"usr-vendedor", "vendedor@ventas-flow.local", "vendedor12345", "Vendedor Demo", "vendedor"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("esquema creado")

	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (id, email, password_hash, name, role, status)
			VALUES ($1, $2, $3, $4, $5, 'active')
			ON CONFLICT (email) DO NOTHING`,
			u.id, u.email, string(hash), u.name, u.role)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar usuario %s: %v\n", u.email, err)
			os.Exit(1)
		}
	}
	fmt.Printf("%d usuarios de demostración\n", len(demoUsers))

	seedStatements := []struct {
		desc string
		sql  string
		args []any
	}{
		{"bodega principal", `
			INSERT INTO warehouses (id, name, stock_location_id, out_type_id)
			VALUES ('wh-main', 'Bodega Principal', 'loc-stock-main', 'ptype-out-main')
			ON CONFLICT (id) DO NOTHING`, nil},
		{"cliente demo", `
			INSERT INTO partners (id, name, email, customer_location_id)
			VALUES ('partner-demo', 'Cliente Demo S.A.S.', 'compras@clientedemo.co', 'loc-customers')
			ON CONFLICT (id) DO NOTHING`, nil},
		{"diario bank", `
			INSERT INTO journals (id, name, type)
			VALUES ('jrn-bank', 'Banco Principal', 'bank')
			ON CONFLICT (id) DO NOTHING`, nil},
		{"existencias producto A", `
			INSERT INTO stocks (product_id, warehouse_id, quantity)
			VALUES ('prod-a', 'wh-main', 1000)
			ON CONFLICT (product_id, warehouse_id) DO NOTHING`, nil},
		{"existencias producto B", `
			INSERT INTO stocks (product_id, warehouse_id, quantity)
			VALUES ('prod-b', 'wh-main', 1000)
			ON CONFLICT (product_id, warehouse_id) DO NOTHING`, nil},
		{"límite de órdenes desactivado", `
			INSERT INTO config_parameters (key, value)
			VALUES ('sale.order_limit', '0')
			ON CONFLICT (key) DO NOTHING`, nil},
	}
	for _, s := range seedStatements {
		if _, err := pool.Exec(ctx, s.sql, s.args...); err != nil {
			fmt.Fprintf(os.Stderr, "insertar %s: %v\n", s.desc, err)
			os.Exit(1)
		}
	}
	fmt.Println("datos de demostración listos")
}
