package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The two partial unique indexes are the atomic conditional inserts behind
// the booking gate: a live reservation per (date, time) and a live pre-order
// per (date, time, table). Cancelled and Delivered rows fall out of the
// index, which is what releases the key.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	reserved_date TEXT NOT NULL,
	reserved_time TEXT NOT NULL,
	guests INT NOT NULL CHECK (guests BETWEEN 1 AND 20),
	status TEXT NOT NULL DEFAULT 'Confirmed',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS reservations_live_slot_idx
	ON reservations (reserved_date, reserved_time)
	WHERE status = 'Confirmed';

CREATE INDEX IF NOT EXISTS reservations_customer_idx
	ON reservations (customer_id, created_at DESC);

CREATE TABLE IF NOT EXISTS orders (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL,
	items JSONB NOT NULL,
	total_cents BIGINT NOT NULL CHECK (total_cents >= 0),
	order_type TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'Pending',
	dining_date TEXT NOT NULL DEFAULT '',
	dining_time TEXT NOT NULL DEFAULT '',
	table_number INT NOT NULL DEFAULT 0,
	payment_status TEXT NOT NULL DEFAULT 'unpaid',
	payment_method TEXT NOT NULL DEFAULT 'none',
	payment_id TEXT NOT NULL DEFAULT '',
	customer_note TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

ALTER TABLE orders DROP CONSTRAINT IF EXISTS orders_preorder_table_check;
ALTER TABLE orders ADD CONSTRAINT orders_preorder_table_check
	CHECK (order_type <> 'pre-order' OR table_number BETWEEN 1 AND 12);

CREATE UNIQUE INDEX IF NOT EXISTS orders_live_table_idx
	ON orders (dining_date, dining_time, table_number)
	WHERE order_type = 'pre-order' AND status <> 'Delivered';

CREATE INDEX IF NOT EXISTS orders_customer_idx
	ON orders (customer_id, created_at DESC);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
