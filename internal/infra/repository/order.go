package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cermartin/sr/internal/domain/order"
	"github.com/cermartin/sr/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of the pgx pool surface the repository needs. Kept
// narrow so tests can stand in for the pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const insertOrderSQL = `
INSERT INTO orders (
	id, reference, email, phone, first_name, last_name,
	address, city, postcode, country, items,
	subtotal_pence, shipping_pence, total_pence,
	payment_session_id, card_last_four, created_at
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9, $10, $11,
	$12, $13, $14,
	NULLIF($15, ''), NULLIF($16, ''), $17
)`

const findOrderBySessionSQL = `
SELECT
	id, reference, email, COALESCE(phone, ''), first_name, last_name,
	address, city, postcode, country, items,
	subtotal_pence, shipping_pence, total_pence,
	COALESCE(payment_session_id, ''), COALESCE(card_last_four, ''), created_at
FROM orders
WHERE payment_session_id = $1
ORDER BY created_at
LIMIT 1`

type orderLineRecord struct {
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPence   int64  `json:"unit_pence"`
}

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(toLineRecords(o.Lines))
	if err != nil {
		return infra.WrapRepoErr("failed to encode order lines", err)
	}

	_, err = r.db.Exec(ctx, insertOrderSQL,
		o.ID, o.Reference, o.Email, o.Phone, o.FirstName, o.LastName,
		o.Address, o.City, o.Postcode, o.Country, items,
		o.SubtotalPence, o.ShippingPence, o.TotalPence,
		o.PaymentSessionID, o.CardLastFour, o.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) FindBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	var (
		o     order.Order
		items []byte
	)

	row := r.db.QueryRow(ctx, findOrderBySessionSQL, sessionID)
	err := row.Scan(
		&o.ID, &o.Reference, &o.Email, &o.Phone, &o.FirstName, &o.LastName,
		&o.Address, &o.City, &o.Postcode, &o.Country, &items,
		&o.SubtotalPence, &o.ShippingPence, &o.TotalPence,
		&o.PaymentSessionID, &o.CardLastFour, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by session id", err)
	}

	var records []orderLineRecord
	if err := json.Unmarshal(items, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order lines", err)
	}
	o.Lines = fromLineRecords(records)

	return &o, nil
}

func toLineRecords(lines []order.Line) []orderLineRecord {
	records := make([]orderLineRecord, len(lines))
	for i, l := range lines {
		records[i] = orderLineRecord{
			ProductName: l.ProductName,
			VariantName: l.VariantName,
			Quantity:    l.Quantity,
			UnitPence:   l.UnitPence,
		}
	}
	return records
}

func fromLineRecords(records []orderLineRecord) []order.Line {
	lines := make([]order.Line, len(records))
	for i, rec := range records {
		lines[i] = order.Line{
			ProductName: rec.ProductName,
			VariantName: rec.VariantName,
			Quantity:    rec.Quantity,
			UnitPence:   rec.UnitPence,
		}
	}
	return lines
}
