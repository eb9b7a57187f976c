package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bridal_erp_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// OrderRepository defines the persistence port of the commit pipeline.
// Header, line and payment writes are individual operations by design: the
// pipeline compensates (DeleteHeader) instead of relying on a surrounding
// transaction, because the same contract must hold against remote stores
// that have no transaction boundary.
type OrderRepository interface {
	// Order header methods
	CreateHeader(executor SQLExecutor, order *models.Order) (int64, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error) // orders, total count, error
	UpdateStatus(executor SQLExecutor, orderID int64, status, paymentStatus string, updatedAt time.Time) error
	UpdatePaymentStatus(executor SQLExecutor, orderID int64, paymentStatus string, updatedAt time.Time) error
	DeleteHeader(executor SQLExecutor, orderID int64) error // compensation and draft deletion only

	// Line item methods
	CreateLineItem(executor SQLExecutor, item *models.LineItem) (int64, error)
	GetLineItemsByOrderID(orderID int64) ([]models.LineItem, error)
	DeleteLineItemsByOrderID(executor SQLExecutor, orderID int64) (int64, error)

	// Payment entry methods
	CreatePayment(executor SQLExecutor, payment *models.PaymentEntry) (int64, error)
	GetPaymentsByOrderID(orderID int64) ([]models.PaymentEntry, error)
	DeletePayment(executor SQLExecutor, orderID, paymentID int64) error
	DeletePaymentsByOrderID(executor SQLExecutor, orderID int64) (int64, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// --- Order Header Methods ---

func (r *orderRepository) CreateHeader(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders
	            (order_type, counterparty_id, location_id, doc_number, doc_date, status, payment_status,
	             items_subtotal, discount_percent, discount_amount, extra_charges, shipping_amount, grand_total,
	             notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	          RETURNING id`

	if order.DocDate.IsZero() {
		order.DocDate = time.Now()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		order.OrderType, order.CounterpartyID, order.LocationID, order.DocNumber, order.DocDate,
		order.Status, order.PaymentStatus,
		order.ItemsSubtotal, order.DiscountPct, order.DiscountAmount, order.ExtraCharges,
		order.ShippingAmount, order.GrandTotal,
		order.Notes, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: document number '%s' already exists (constraint: %s)", ErrDuplicateKey, order.DocNumber, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating order header: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT id, order_type, counterparty_id, location_id, doc_number, doc_date, status, payment_status,
	                 items_subtotal, discount_percent, discount_amount, extra_charges, shipping_amount, grand_total,
	                 notes, created_at, updated_at
	          FROM orders
	          WHERE id = $1`
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID, &order.OrderType, &order.CounterpartyID, &order.LocationID, &order.DocNumber,
		&order.DocDate, &order.Status, &order.PaymentStatus,
		&order.ItemsSubtotal, &order.DiscountPct, &order.DiscountAmount, &order.ExtraCharges,
		&order.ShippingAmount, &order.GrandTotal,
		&order.Notes, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return order, nil
}

func (r *orderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	orders := []models.Order{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT
            o.id, o.order_type, o.counterparty_id, o.location_id, o.doc_number, o.doc_date,
            o.status, o.payment_status,
            o.items_subtotal, o.discount_percent, o.discount_amount, o.extra_charges,
            o.shipping_amount, o.grand_total,
            o.notes, o.created_at, o.updated_at,
            cp.full_name AS counterparty_name, cp.party_type AS counterparty_type,
            loc.name AS location_name,
            COUNT(*) OVER() AS total_count
        FROM orders o
        LEFT JOIN counterparties cp ON o.counterparty_id = cp.id
        LEFT JOIN locations loc ON o.location_id = loc.id
    `)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.OrderType != nil && *filters.OrderType != "" {
		conditions = append(conditions, fmt.Sprintf("o.order_type = $%d", argCounter))
		args = append(args, *filters.OrderType)
		argCounter++
	}
	if filters.CounterpartyID != nil {
		conditions = append(conditions, fmt.Sprintf("o.counterparty_id = $%d", argCounter))
		args = append(args, *filters.CounterpartyID)
		argCounter++
	}
	if filters.LocationID != nil {
		conditions = append(conditions, fmt.Sprintf("o.location_id = $%d", argCounter))
		args = append(args, *filters.LocationID)
		argCounter++
	}
	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argCounter))
		args = append(args, *filters.Status)
		argCounter++
	}
	if filters.Date != nil && *filters.Date != "" {
		parsedDate, err := time.Parse("2006-01-02", *filters.Date)
		if err == nil {
			startOfDay := time.Date(parsedDate.Year(), parsedDate.Month(), parsedDate.Day(), 0, 0, 0, 0, parsedDate.Location())
			endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
			conditions = append(conditions, fmt.Sprintf("o.doc_date BETWEEN $%d AND $%d", argCounter, argCounter+1))
			args = append(args, startOfDay, endOfDay)
			argCounter += 2
		}
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY o.doc_date DESC, o.id DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
		args = append(args, filters.PageSize)
		argCounter++
		if filters.Page > 0 {
			offset := (filters.Page - 1) * filters.PageSize
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCounter))
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		var counterpartyName, counterpartyType, locationName sql.NullString

		err := rows.Scan(
			&o.ID, &o.OrderType, &o.CounterpartyID, &o.LocationID, &o.DocNumber, &o.DocDate,
			&o.Status, &o.PaymentStatus,
			&o.ItemsSubtotal, &o.DiscountPct, &o.DiscountAmount, &o.ExtraCharges,
			&o.ShippingAmount, &o.GrandTotal,
			&o.Notes, &o.CreatedAt, &o.UpdatedAt,
			&counterpartyName, &counterpartyType, &locationName,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}

		if o.CounterpartyID != nil {
			counterparty := models.Counterparty{ID: *o.CounterpartyID}
			if counterpartyName.Valid {
				counterparty.FullName = counterpartyName.String
			}
			if counterpartyType.Valid {
				counterparty.PartyType = counterpartyType.String
			}
			o.Counterparty = &counterparty
		}
		if locationName.Valid {
			o.Location = &models.Location{ID: o.LocationID, Name: locationName.String}
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, totalCount, nil
}

func (r *orderRepository) UpdateStatus(executor SQLExecutor, orderID int64, status, paymentStatus string, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $1, payment_status = $2, updated_at = $3 WHERE id = $4`
	result, err := executor.Exec(query, status, paymentStatus, updatedAt, orderID)
	if err != nil {
		return fmt.Errorf("%w: updating order status for ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order status update ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdatePaymentStatus(executor SQLExecutor, orderID int64, paymentStatus string, updatedAt time.Time) error {
	query := `UPDATE orders SET payment_status = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, paymentStatus, updatedAt, orderID)
	if err != nil {
		return fmt.Errorf("%w: updating payment status for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for payment status update ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeleteHeader(executor SQLExecutor, orderID int64) error {
	query := `DELETE FROM orders WHERE id = $1`
	result, err := executor.Exec(query, orderID)
	if err != nil {
		return fmt.Errorf("%w: deleting order header ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting order header ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Line Item Methods ---

func (r *orderRepository) CreateLineItem(executor SQLExecutor, item *models.LineItem) (int64, error) {
	query := `INSERT INTO order_lines
	            (order_id, product_id, variation_id, sku, quantity, unit_price, line_discount, row_total,
	             packing, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id`
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	var packing interface{}
	if item.Packing != nil {
		raw, err := json.Marshal(item.Packing)
		if err != nil {
			return 0, fmt.Errorf("%w: encoding packing record for order ID %d: %v", ErrDatabaseError, item.OrderID, err)
		}
		packing = raw
	}

	err := executor.QueryRow(query,
		item.OrderID, item.ProductID, item.VariationID, item.SKU, item.Quantity,
		item.UnitPrice, item.LineDiscount, item.RowTotal,
		packing, item.Notes, item.CreatedAt,
	).Scan(&item.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: creating order line (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating order line: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *orderRepository) GetLineItemsByOrderID(orderID int64) ([]models.LineItem, error) {
	items := []models.LineItem{}
	query := `
		SELECT
		    ol.id, ol.order_id, ol.product_id, ol.variation_id, ol.sku, ol.quantity,
		    ol.unit_price, ol.line_discount, ol.row_total, ol.packing, ol.notes, ol.created_at,
		    p.name AS product_name
		FROM order_lines ol
		JOIN products p ON ol.product_id = p.id
		WHERE ol.order_id = $1
		ORDER BY ol.id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying order lines for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.LineItem
		var packing []byte
		var productName sql.NullString

		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.VariationID, &item.SKU, &item.Quantity,
			&item.UnitPrice, &item.LineDiscount, &item.RowTotal, &packing, &item.Notes, &item.CreatedAt,
			&productName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order line for order ID %d: %v", ErrDatabaseError, orderID, err)
		}

		if len(packing) > 0 {
			var record models.PackingRecord
			if err := json.Unmarshal(packing, &record); err != nil {
				return nil, fmt.Errorf("%w: decoding packing record for line ID %d: %v", ErrDatabaseError, item.ID, err)
			}
			item.Packing = &record
		}
		if productName.Valid {
			name := productName.String
			item.ProductName = &name
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order line rows for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return items, nil
}

func (r *orderRepository) DeleteLineItemsByOrderID(executor SQLExecutor, orderID int64) (int64, error) {
	query := `DELETE FROM order_lines WHERE order_id = $1`
	result, err := executor.Exec(query, orderID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting order lines for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting order lines for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return rowsAffected, nil
}

// --- Payment Entry Methods ---

func (r *orderRepository) CreatePayment(executor SQLExecutor, payment *models.PaymentEntry) (int64, error) {
	query := `INSERT INTO payment_entries (order_id, method, amount, reference, paid_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}

	err := executor.QueryRow(query,
		payment.OrderID, payment.Method, payment.Amount, payment.Reference, payment.PaidAt,
	).Scan(&payment.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: creating payment entry (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
		}
		return 0, fmt.Errorf("%w: creating payment entry: %v", ErrDatabaseError, err)
	}
	return payment.ID, nil
}

func (r *orderRepository) GetPaymentsByOrderID(orderID int64) ([]models.PaymentEntry, error) {
	payments := []models.PaymentEntry{}
	query := `SELECT id, order_id, method, amount, reference, paid_at
	          FROM payment_entries
	          WHERE order_id = $1
	          ORDER BY id`

	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payment entries for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var payment models.PaymentEntry
		err := rows.Scan(&payment.ID, &payment.OrderID, &payment.Method, &payment.Amount, &payment.Reference, &payment.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning payment entry for order ID %d: %v", ErrDatabaseError, orderID, err)
		}
		payments = append(payments, payment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return payments, nil
}

func (r *orderRepository) DeletePayment(executor SQLExecutor, orderID, paymentID int64) error {
	query := `DELETE FROM payment_entries WHERE id = $1 AND order_id = $2`
	result, err := executor.Exec(query, paymentID, orderID)
	if err != nil {
		return fmt.Errorf("%w: deleting payment entry ID %d for order ID %d: %v", ErrDatabaseError, paymentID, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting payment entry ID %d: %v", ErrDatabaseError, paymentID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) DeletePaymentsByOrderID(executor SQLExecutor, orderID int64) (int64, error) {
	query := `DELETE FROM payment_entries WHERE order_id = $1`
	result, err := executor.Exec(query, orderID)
	if err != nil {
		return 0, fmt.Errorf("%w: deleting payment entries for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for deleting payment entries for order ID %d: %v", ErrDatabaseError, orderID, err)
	}
	return rowsAffected, nil
}
