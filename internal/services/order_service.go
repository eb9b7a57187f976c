package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bridal_erp_backend/internal/models"
	"bridal_erp_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Order status constants. Purchases cycle through pending/ordered/received;
// ordered and received finalize the same way final does for sales.
const (
	StatusDraft     = "draft"
	StatusFinal     = "final"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
	StatusOrdered   = "ordered"
	StatusReceived  = "received"
)

// Document number prefixes by order type.
const (
	DocPrefixSale     = "SAL"
	DocPrefixPurchase = "PUR"
)

// --- Data Transfer Objects (DTOs) ---

// CreateLineRequest is one cart line as bound by the entry form. VariationID
// must already be selected: there is no bulk-add across variations.
type CreateLineRequest struct {
	ProductID    int64                 `json:"product_id" binding:"required"`
	VariationID  int64                 `json:"variation_id"`
	Quantity     float64               `json:"quantity"`
	LineDiscount float64               `json:"line_discount"`
	Packing      *models.PackingRecord `json:"packing"`
	Notes        string                `json:"notes"`
}

// CreatePaymentRequest is one payment entry submitted with the order.
type CreatePaymentRequest struct {
	Method    string  `json:"method" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reference string  `json:"reference"`
}

// CreateOrderRequest is used for committing a new order.
type CreateOrderRequest struct {
	OrderType       string                 `json:"order_type" binding:"required"`
	CounterpartyID  *int64                 `json:"counterparty_id"`
	LocationID      int64                  `json:"location_id" binding:"required"`
	Status          string                 `json:"status"`
	DocDate         *time.Time             `json:"doc_date"`
	NumberFormat    string                 `json:"number_format"` // long | short, defaults to long
	DiscountPercent float64                `json:"discount_percent"`
	ExtraCharges    []ExtraCharge          `json:"extra_charges"`
	ShippingAmount  float64                `json:"shipping_amount"`
	Notes           string                 `json:"notes"`
	Lines           []CreateLineRequest    `json:"lines" binding:"required,dive"`
	Payments        []CreatePaymentRequest `json:"payments"`
}

// UpdateOrderStatusRequest is used for transitioning an order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- OrderService Interface ---

// OrderService is the commit pipeline and order read model. A commit either
// returns a CommitResult (possibly with warnings) or a fatal error; fatal
// errors leave the store in its pre-commit state via compensating deletes.
type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*CommitResult, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, int, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	UpdateOrderStatus(orderID int64, req UpdateOrderStatusRequest) (*CommitResult, error)
	DeleteOrder(orderID int64) error
	AddPayment(orderID int64, req CreatePaymentRequest) (*CommitResult, error)
	RemovePayment(orderID, paymentID int64) error
}

// --- orderService Implementation ---

type orderService struct {
	orderRepo        repositories.OrderRepository
	stockRepo        repositories.StockRepository
	accountingRepo   repositories.AccountingRepository
	counterpartyRepo repositories.CounterpartyRepository
	resolver         VariationResolver
	numbering        NumberingService
	db               *sql.DB
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	sr repositories.StockRepository,
	ar repositories.AccountingRepository,
	cr repositories.CounterpartyRepository,
	resolver VariationResolver,
	numbering NumberingService,
	db *sql.DB,
) OrderService {
	return &orderService{
		orderRepo:        or,
		stockRepo:        sr,
		accountingRepo:   ar,
		counterpartyRepo: cr,
		resolver:         resolver,
		numbering:        numbering,
		db:               db,
	}
}

// --- Method Implementations ---

// CreateOrder runs the commit sequence: validate, re-resolve variation
// bindings, number the document, insert the header, insert the lines,
// mutate stock (finalizing commits only), persist payments and emit
// accounting entries. Header/line failures are fatal and compensated;
// stock/payment/accounting failures degrade to warnings because the
// financial record is the source of truth once header and lines are durable.
func (s *orderService) CreateOrder(req CreateOrderRequest) (*CommitResult, error) {
	if req.Status == "" {
		req.Status = StatusDraft
	}
	if err := validateCreateOrder(&req); err != nil {
		return nil, err
	}

	counterparty, err := s.fetchCounterparty(req.CounterpartyID)
	if err != nil {
		return nil, err
	}
	role := PriceRoleFor(req.OrderType, counterparty)

	// Step 1: re-resolve every line's bound variation. A variation deleted
	// between selection and commit fails the whole commit before anything
	// is written.
	lines, draft, err := s.resolveLines(req, role)
	if err != nil {
		return nil, err
	}
	totals := Aggregate(*draft)

	correlationID := uuid.NewString()
	warnings := []CommitWarning{}

	docDate := time.Now()
	if req.DocDate != nil {
		docDate = *req.DocDate
	}
	docNumber, fellBack, err := s.numbering.Next(docPrefixFor(req.OrderType), numberFormatFor(req.NumberFormat), docDate)
	if err != nil {
		// Next never blocks entry; an error here would be a programming bug,
		// but a generated placeholder still lets the commit proceed.
		docNumber = fmt.Sprintf("%s-%s-0001", docPrefixFor(req.OrderType), docDate.Format("20060102"))
		fellBack = true
	}
	if fellBack {
		warnings = append(warnings, CommitWarning{
			Stage:   StageNumbering,
			Message: "numbering history unavailable; date-seeded placeholder number assigned",
		})
		log.Warn().Str("commit_id", correlationID).Str("doc_number", docNumber).
			Msg("Numbering fallback used")
	}

	pendingPayments := make([]models.PaymentEntry, 0, len(req.Payments))
	for _, p := range req.Payments {
		pendingPayments = append(pendingPayments, models.PaymentEntry{Method: p.Method, Amount: p.Amount})
	}

	order := models.Order{
		OrderType:      req.OrderType,
		CounterpartyID: req.CounterpartyID,
		LocationID:     req.LocationID,
		DocNumber:      docNumber,
		DocDate:        docDate,
		Status:         req.Status,
		PaymentStatus:  ClassifyPayment(totals.GrandTotal, pendingPayments),
		ItemsSubtotal:  totals.ItemsSubtotal,
		DiscountPct:    req.DiscountPercent,
		DiscountAmount: totals.DiscountAmount,
		ExtraCharges:   totals.ExtraCharges,
		ShippingAmount: totals.ShippingAmount,
		GrandTotal:     totals.GrandTotal,
		Notes:          models.NewNullString(req.Notes),
	}

	// Step 2: header insert. Failure aborts; nothing else has happened yet.
	orderID, err := s.orderRepo.CreateHeader(s.db, &order)
	if err != nil {
		return nil, &CommitError{Stage: StageHeader, Err: err}
	}

	// Step 3: line inserts. Failure rolls the header (and any lines already
	// written) back; the commit must not leave an orphaned header.
	for i := range lines {
		lines[i].OrderID = orderID
		if _, err := s.orderRepo.CreateLineItem(s.db, &lines[i]); err != nil {
			s.compensateHeader(orderID, correlationID)
			return nil, &CommitError{Stage: StageLines, Err: err}
		}
	}

	// Step 4: stock mutation, only when the target status finalizes. Soft
	// failure: the financial record stays committed, the operator gets a
	// warning for manual reconciliation.
	if isFinalizingStatus(order.Status) {
		warnings = append(warnings, s.applyStockDeltas(order.OrderType, order.LocationID, lines, correlationID)...)
	}

	// Step 5: payment entries and accounting emission, also soft-fail.
	warnings = append(warnings, s.persistPayments(&order, req.Payments, correlationID)...)

	return &CommitResult{OrderID: orderID, DocNumber: docNumber, Warnings: warnings}, nil
}

func (s *orderService) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	orders, totalCount, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, totalCount, nil
}

func (s *orderService) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID from repository: %w", err)
	}

	lines, err := s.orderRepo.GetLineItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order lines for order ID %d: %w", orderID, err)
	}
	order.Lines = lines

	payments, err := s.orderRepo.GetPaymentsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for order ID %d: %w", orderID, err)
	}
	order.Payments = payments

	return order, nil
}

// UpdateOrderStatus transitions an order. Entering a finalizing status from
// a non-finalizing one is the only trigger for stock mutation; cancellation
// is allowed only before finalization.
func (s *orderService) UpdateOrderStatus(orderID int64, req UpdateOrderStatusRequest) (*CommitResult, error) {
	if !isValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(order.Status, req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, req.Status)
	}

	correlationID := uuid.NewString()
	warnings := []CommitWarning{}

	finalizing := isFinalizingStatus(req.Status) && !isFinalizingStatus(order.Status)

	// Persist the transition before touching stock or accounting. A failure
	// here is fatal but leaves no side effects, so retrying is safe; once the
	// status is durable the remaining steps soft-fail, mirroring CreateOrder.
	if err := s.orderRepo.UpdateStatus(s.db, orderID, req.Status, order.PaymentStatus, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status in repository: %w", err)
	}

	if finalizing {
		warnings = append(warnings, s.applyStockDeltas(order.OrderType, order.LocationID, order.Lines, correlationID)...)
		warnings = append(warnings, s.emitAccounting(order, order.Payments, correlationID)...)
	}

	return &CommitResult{OrderID: orderID, DocNumber: order.DocNumber, Warnings: warnings}, nil
}

// DeleteOrder removes a draft (or cancelled/pending) order with its lines
// and payments. Once finalized, stock has already moved, so raw deletion is
// refused; undoing requires explicit compensating entries.
func (s *orderService) DeleteOrder(orderID int64) error {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to fetch order for deletion: %w", err)
	}

	if isFinalizingStatus(order.Status) {
		return ErrOrderFinalized
	}

	if _, err := s.orderRepo.DeletePaymentsByOrderID(s.db, orderID); err != nil {
		return fmt.Errorf("failed to delete payment entries: %w", err)
	}
	if _, err := s.orderRepo.DeleteLineItemsByOrderID(s.db, orderID); err != nil {
		return fmt.Errorf("failed to delete order lines: %w", err)
	}
	if err := s.orderRepo.DeleteHeader(s.db, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order header: %w", err)
	}
	return nil
}

// AddPayment appends a payment entry and reclassifies the order's payment
// status. Quick-pay shortcuts never reach this method; they only prefill the
// amount on the client.
func (s *orderService) AddPayment(orderID int64, req CreatePaymentRequest) (*CommitResult, error) {
	if !IsValidPaymentMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method '%s'", ErrValidation, req.Method)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	entry := models.PaymentEntry{
		OrderID:   orderID,
		Method:    req.Method,
		Amount:    req.Amount,
		Reference: models.NewNullString(req.Reference),
	}
	if entry.Reference == nil {
		reference := uuid.NewString()
		entry.Reference = &reference
	}
	if _, err := s.orderRepo.CreatePayment(s.db, &entry); err != nil {
		return nil, fmt.Errorf("failed to create payment entry: %w", err)
	}

	payments := append(order.Payments, entry)
	paymentStatus := ClassifyPayment(order.GrandTotal, payments)
	if err := s.orderRepo.UpdatePaymentStatus(s.db, orderID, paymentStatus, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	// Emission must see the reclassified status, not the one read before this
	// entry existed; an entry that completes the total counts as paid.
	order.PaymentStatus = paymentStatus

	correlationID := uuid.NewString()
	warnings := []CommitWarning{}
	if isFinalizingStatus(order.Status) {
		warnings = append(warnings, s.emitAccounting(order, []models.PaymentEntry{entry}, correlationID)...)
	}

	return &CommitResult{OrderID: orderID, DocNumber: order.DocNumber, Warnings: warnings}, nil
}

// RemovePayment deletes a payment entry and reclassifies. Remaining entries
// keep their identifiers; there is no renumbering or locking.
func (s *orderService) RemovePayment(orderID, paymentID int64) error {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if err := s.orderRepo.DeletePayment(s.db, orderID, paymentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: payment entry %d", ErrOrderNotFound, paymentID)
		}
		return fmt.Errorf("failed to delete payment entry: %w", err)
	}

	remaining := make([]models.PaymentEntry, 0, len(order.Payments))
	for _, payment := range order.Payments {
		if payment.ID != paymentID {
			remaining = append(remaining, payment)
		}
	}
	paymentStatus := ClassifyPayment(order.GrandTotal, remaining)
	if err := s.orderRepo.UpdatePaymentStatus(s.db, orderID, paymentStatus, time.Now()); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return nil
}

// --- Commit pipeline helpers ---

func (s *orderService) fetchCounterparty(counterpartyID *int64) (*models.Counterparty, error) {
	if counterpartyID == nil {
		return nil, nil
	}
	counterparty, err := s.counterpartyRepo.GetCounterpartyByID(*counterpartyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: counterparty %d does not exist", ErrValidation, *counterpartyID)
		}
		return nil, fmt.Errorf("failed to fetch counterparty %d: %w", *counterpartyID, err)
	}
	return counterparty, nil
}

// resolveLines re-fetches current variation records for every requested
// line and binds SKU, unit price and effective quantity in one place.
func (s *orderService) resolveLines(req CreateOrderRequest, role PriceRole) ([]models.LineItem, *OrderDraft, error) {
	lines := make([]models.LineItem, 0, len(req.Lines))
	draft := OrderDraft{
		DiscountPercent: req.DiscountPercent,
		ExtraCharges:    req.ExtraCharges,
		ShippingAmount:  req.ShippingAmount,
	}

	for _, lineReq := range req.Lines {
		resolved, err := s.resolver.ResolveOne(lineReq.ProductID, lineReq.VariationID, req.LocationID, role)
		if err != nil {
			return nil, nil, err
		}

		quantity := lineReq.Quantity
		if lineReq.Packing != nil {
			quantity = EffectiveQuantity(quantity, AggregatePacking(*lineReq.Packing))
		}
		if quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: quantity for product %d must be positive", ErrValidation, lineReq.ProductID)
		}
		if resolved.UnitPrice <= 0 {
			return nil, nil, fmt.Errorf("%w: unit price for product %d must be positive", ErrValidation, lineReq.ProductID)
		}

		lines = append(lines, models.LineItem{
			ProductID:    lineReq.ProductID,
			VariationID:  resolved.ID,
			SKU:          resolved.SKU,
			Quantity:     quantity,
			UnitPrice:    resolved.UnitPrice,
			LineDiscount: lineReq.LineDiscount,
			RowTotal:     RowTotal(resolved.UnitPrice, quantity),
			Packing:      lineReq.Packing,
			Notes:        models.NewNullString(lineReq.Notes),
		})
		draft.Lines = append(draft.Lines, DraftLine{
			UnitPrice:    resolved.UnitPrice,
			Quantity:     quantity,
			LineDiscount: lineReq.LineDiscount,
		})
	}
	return lines, &draft, nil
}

// compensateHeader deletes an order header after a downstream step failed.
// Any lines already written in this commit are removed first.
func (s *orderService) compensateHeader(orderID int64, correlationID string) {
	if _, err := s.orderRepo.DeleteLineItemsByOrderID(s.db, orderID); err != nil {
		log.Error().Err(err).Str("commit_id", correlationID).Int64("order_id", orderID).
			Msg("Compensating line delete failed; manual cleanup required")
	}
	if err := s.orderRepo.DeleteHeader(s.db, orderID); err != nil {
		log.Error().Err(err).Str("commit_id", correlationID).Int64("order_id", orderID).
			Msg("Compensating header delete failed; orphaned header requires manual cleanup")
	}
}

// applyStockDeltas runs the read-modify-write cycle per line, sequentially.
// Purchases add quantity (creating the entry on first purchase), sales
// subtract it, clamped so available stock never goes negative. Failures are
// collected as warnings, never propagated: the financial record is already
// durable and partial stock sync must not destroy it.
func (s *orderService) applyStockDeltas(orderType string, locationID int64, lines []models.LineItem, correlationID string) []CommitWarning {
	warnings := []CommitWarning{}
	for _, line := range lines {
		current, err := s.stockRepo.GetQuantity(line.VariationID, locationID)
		if err != nil {
			warnings = append(warnings, stockWarning(line, err))
			log.Warn().Err(err).Str("commit_id", correlationID).Int64("variation_id", line.VariationID).
				Msg("Stock read failed during finalize")
			continue
		}

		var newQuantity float64
		if orderType == OrderTypePurchase {
			newQuantity = current + line.Quantity
		} else {
			newQuantity = current - line.Quantity
			if newQuantity < 0 {
				newQuantity = 0
			}
		}

		if err := s.stockRepo.Upsert(s.db, line.VariationID, locationID, newQuantity); err != nil {
			warnings = append(warnings, stockWarning(line, err))
			log.Warn().Err(err).Str("commit_id", correlationID).Int64("variation_id", line.VariationID).
				Msg("Stock upsert failed during finalize")
		}
	}
	return warnings
}

// persistPayments writes payment entries and, for finalized paid/cash
// orders, emits one accounting entry per payment. Both halves soft-fail.
func (s *orderService) persistPayments(order *models.Order, payments []CreatePaymentRequest, correlationID string) []CommitWarning {
	warnings := []CommitWarning{}
	entries := make([]models.PaymentEntry, 0, len(payments))

	for _, paymentReq := range payments {
		entry := models.PaymentEntry{
			OrderID:   order.ID,
			Method:    paymentReq.Method,
			Amount:    paymentReq.Amount,
			Reference: models.NewNullString(paymentReq.Reference),
		}
		if entry.Reference == nil {
			reference := uuid.NewString()
			entry.Reference = &reference
		}
		if _, err := s.orderRepo.CreatePayment(s.db, &entry); err != nil {
			warnings = append(warnings, CommitWarning{
				Stage:   StagePayment,
				Message: fmt.Sprintf("payment entry of %.2f via %s was not saved: %v", paymentReq.Amount, paymentReq.Method, err),
			})
			log.Warn().Err(err).Str("commit_id", correlationID).Int64("order_id", order.ID).
				Msg("Payment entry persist failed")
			continue
		}
		entries = append(entries, entry)
	}

	if isFinalizingStatus(order.Status) {
		warnings = append(warnings, s.emitAccounting(order, entries, correlationID)...)
	}
	return warnings
}

// emitAccounting forwards payment entries to the accounting sink. Emission
// is fire-and-forget: it only happens for finalized orders that are fully
// paid or paid in cash, and a failed emission degrades to a warning.
func (s *orderService) emitAccounting(order *models.Order, entries []models.PaymentEntry, correlationID string) []CommitWarning {
	warnings := []CommitWarning{}
	for _, entry := range entries {
		if order.PaymentStatus != PaymentStatusPaid && entry.Method != PaymentMethodCash {
			continue
		}
		description := fmt.Sprintf("%s %s payment for %s", order.OrderType, entry.Method, order.DocNumber)
		if err := s.accountingRepo.RecordPayment(order.ID, entry.Amount, entry.Method, entry.Reference, description); err != nil {
			warnings = append(warnings, CommitWarning{
				Stage:   StagePayment,
				Message: fmt.Sprintf("accounting entry for %.2f via %s was not recorded: %v", entry.Amount, entry.Method, err),
			})
			log.Warn().Err(err).Str("commit_id", correlationID).Int64("order_id", order.ID).
				Msg("Accounting emission failed")
		}
	}
	return warnings
}

func stockWarning(line models.LineItem, err error) CommitWarning {
	return CommitWarning{
		Stage:   StageStock,
		Message: fmt.Sprintf("stock for SKU %s (variation %d) was not synced: %v", line.SKU, line.VariationID, err),
	}
}

// --- Validation helpers ---

// validateCreateOrder rejects malformed commits before any write happens.
func validateCreateOrder(req *CreateOrderRequest) error {
	if req.OrderType != OrderTypeSale && req.OrderType != OrderTypePurchase {
		return fmt.Errorf("%w: order type must be sale or purchase", ErrValidation)
	}
	if !isValidOrderStatus(req.Status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}
	if req.Status == StatusCancelled {
		return fmt.Errorf("%w: an order cannot be created as cancelled", ErrValidation)
	}
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: location must be selected", ErrValidation)
	}
	if req.OrderType == OrderTypePurchase && req.CounterpartyID == nil {
		return fmt.Errorf("%w: a purchase requires a supplier", ErrValidation)
	}
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: order has no line items", ErrValidation)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return fmt.Errorf("%w: discount percent must be within [0, 100]", ErrValidation)
	}
	for _, line := range req.Lines {
		if line.VariationID <= 0 {
			return fmt.Errorf("%w: product %d has no variation selected", ErrValidation, line.ProductID)
		}
	}
	for _, payment := range req.Payments {
		if !IsValidPaymentMethod(payment.Method) {
			return fmt.Errorf("%w: unknown payment method '%s'", ErrValidation, payment.Method)
		}
		if payment.Amount <= 0 {
			return fmt.Errorf("%w: payment amount must be positive", ErrValidation)
		}
	}
	return nil
}

func isValidOrderStatus(status string) bool {
	switch status {
	case StatusDraft, StatusFinal, StatusCancelled, StatusPending, StatusOrdered, StatusReceived:
		return true
	default:
		return false
	}
}

// isFinalizingStatus reports whether a status triggers stock mutation and
// accounting emission. Ordered and received are the purchase-side spellings
// of final.
func isFinalizingStatus(status string) bool {
	switch status {
	case StatusFinal, StatusOrdered, StatusReceived:
		return true
	default:
		return false
	}
}

// isValidTransition encodes the order state machine. Finalized orders only
// advance within the purchase cycle; cancellation stops being available the
// moment stock has moved.
func isValidTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusFinal || to == StatusCancelled || to == StatusPending ||
			to == StatusOrdered || to == StatusReceived
	case StatusPending:
		return to == StatusOrdered || to == StatusReceived || to == StatusCancelled
	case StatusOrdered:
		return to == StatusReceived
	default:
		return false
	}
}

func docPrefixFor(orderType string) string {
	if orderType == OrderTypePurchase {
		return DocPrefixPurchase
	}
	return DocPrefixSale
}

func numberFormatFor(raw string) NumberFormat {
	if raw == string(FormatShort) {
		return FormatShort
	}
	return FormatLong
}
