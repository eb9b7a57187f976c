package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bridal_erp_backend/internal/models"
	"bridal_erp_backend/internal/services"
	"bridal_erp_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes variation resolution and packing aggregation to the
// entry form.
type CatalogHandler struct {
	resolver services.VariationResolver
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(resolver services.VariationResolver) *CatalogHandler {
	return &CatalogHandler{resolver: resolver}
}

// GetVariations resolves a product's variations at a location for a price
// role. The response flags whether the operator must pick one before a line
// can be added.
func (h *CatalogHandler) GetVariations(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	locationIDStr := c.Query("location_id")
	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil || locationID <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid or missing location_id.", "location_id must be a positive integer"))
		return
	}

	roleStr := c.DefaultQuery("role", string(services.RoleRetail))
	role, err := services.ParsePriceRole(roleStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid price role.", err.Error()))
		return
	}

	variations, err := h.resolver.Resolve(productID, locationID, role)
	if err != nil {
		utils.LogError(err, "GetVariations: Error from resolver.Resolve")
		if errors.Is(err, services.ErrEmptyCatalog) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Product has no resolvable variations.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to resolve variations.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":               variations,
		"selection_required": services.SelectionRequired(variations),
	})
}

// AggregatePacking collapses a packing record into totals. Pure computation
// for the entry form; nothing is persisted.
func (h *CatalogHandler) AggregatePacking(c *gin.Context) {
	var record models.PackingRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid packing record: "+err.Error(), err.Error()))
		return
	}
	c.JSON(http.StatusOK, services.AggregatePacking(record))
}

// GetStockEntry returns the current on-hand quantity for a variation at a
// location. An absent stock entry reads as zero, not as an error.
func (h *CatalogHandler) GetStockEntry(c *gin.Context) {
	variationID, err := strconv.ParseInt(c.Query("variation_id"), 10, 64)
	if err != nil || variationID <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid or missing variation_id.", "variation_id must be a positive integer"))
		return
	}
	locationID, err := strconv.ParseInt(c.Query("location_id"), 10, 64)
	if err != nil || locationID <= 0 {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid or missing location_id.", "location_id must be a positive integer"))
		return
	}

	entry, err := h.resolver.StockAt(variationID, locationID)
	if err != nil {
		utils.LogError(err, "GetStockEntry: Error from resolver.StockAt")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read stock entry.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// QuickPay computes a suggested payment amount from a grand total and a
// percentage. It only prefills the amount field; adding the payment entry
// remains an explicit separate action.
func (h *CatalogHandler) QuickPay(c *gin.Context) {
	grandTotal, err := strconv.ParseFloat(c.Query("grand_total"), 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid grand_total.", "grand_total must be a number"))
		return
	}
	percent, err := strconv.ParseFloat(c.DefaultQuery("percent", "100"), 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid percent.", "percent must be a number"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": services.QuickPayAmount(grandTotal, percent)})
}
