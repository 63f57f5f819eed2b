package repository

import (
	"context"
	"encoding/json"
	"time"

	"almaaz-api/internal/domain/order"
	"almaaz-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// lineRecord is the JSONB shape of one order line.
type lineRecord struct {
	ItemRef        string `json:"item_ref"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

func marshalLines(lines []order.Line) ([]byte, error) {
	records := make([]lineRecord, len(lines))
	for i, l := range lines {
		records[i] = lineRecord{
			ItemRef:        l.ItemRef,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
	}
	return json.Marshal(records)
}

func unmarshalLines(data []byte) ([]order.Line, error) {
	var records []lineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	lines := make([]order.Line, len(records))
	for i, rec := range records {
		lines[i] = order.Line{
			ItemRef:        rec.ItemRef,
			Name:           rec.Name,
			Quantity:       rec.Quantity,
			UnitPriceCents: rec.UnitPriceCents,
		}
	}
	return lines, nil
}

// Create inserts the order. For pre-orders the partial unique index on
// (dining_date, dining_time, table_number) WHERE order_type = 'pre-order'
// AND status <> 'Delivered' is the atomic conditional insert behind the
// booking gate.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := marshalLines(o.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}

	const q = `
		INSERT INTO orders
			(id, customer_id, items, total_cents, order_type, status,
			 dining_date, dining_time, table_number,
			 payment_status, payment_method, payment_id, customer_note,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.db.Exec(ctx, q,
		o.ID(), o.CustomerID(), items, o.TotalCents(), o.Type().String(), o.Status().String(),
		o.DiningDate(), o.DiningTime(), o.TableNumber(),
		string(o.PaymentStatus()), string(o.PaymentMethod()), o.PaymentID(), o.CustomerNote(),
		o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

const orderColumns = `
	id, customer_id, items, total_cents, order_type, status,
	dining_date, dining_time, table_number,
	payment_status, payment_method, payment_id, customer_note,
	created_at, updated_at`

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return o, nil
}

// UpdateStatus commits a status advance only if the row still carries the
// status the caller read. A stale writer affects zero rows and gets
// STALE_UPDATE instead of silently overwriting a later transition, so a
// Delivered order can never be pulled back into the live table predicate.
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order, prev order.Status) error {
	const q = `
		UPDATE orders
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2`

	tag, err := r.db.Exec(ctx, q, o.ID(), prev.String(), o.Status().String(), o.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, o.ID()).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check order existence", err)
		}
		if !exists {
			return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("order status changed concurrently", nil, infra.KindStaleUpdate)
	}
	return nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer orders", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// LiveTableNumbers returns the table numbers occupied by live pre-orders at
// the given slot. Feeds the availability snapshot; read-only.
func (r *OrderRepository) LiveTableNumbers(ctx context.Context, date, timeOfDay string) ([]int, error) {
	const q = `
		SELECT table_number
		FROM orders
		WHERE order_type = 'pre-order'
		  AND status <> 'Delivered'
		  AND dining_date = $1
		  AND dining_time = $2
		ORDER BY table_number`

	rows, err := r.db.Query(ctx, q, date, timeOfDay)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query live tables", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table number", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate live tables", err)
	}
	return numbers, nil
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var (
		id, customerID                             uuid.UUID
		items                                      []byte
		totalCents                                 int64
		orderType, status                          string
		diningDate, diningTime                     string
		tableNumber                                int
		paymentStatus, paymentMethod               string
		paymentID, customerNote                    string
		createdAt, updatedAt                       time.Time
	)
	err := row.Scan(
		&id, &customerID, &items, &totalCents, &orderType, &status,
		&diningDate, &diningTime, &tableNumber,
		&paymentStatus, &paymentMethod, &paymentID, &customerNote,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no order row", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}

	lines, err := unmarshalLines(items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order items", err)
	}

	return order.Reconstruct(
		id, customerID, lines, totalCents,
		order.OrderType(orderType), order.Status(status),
		diningDate, diningTime, tableNumber,
		order.PaymentStatus(paymentStatus), order.PaymentMethod(paymentMethod),
		paymentID, customerNote,
		createdAt, updatedAt,
	), nil
}

func collectOrders(rows pgx.Rows) ([]*order.Order, error) {
	var out []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return out, nil
}
