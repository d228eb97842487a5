package stubapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxtelecom/vendas-cli/internal/vendas"
)

// salesHandler holds the stub storage and implements HTTP handlers for the
// sale endpoints the dashboard client consumes.
type salesHandler struct {
	storage Storage
	logger  *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(storage Storage, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		storage: storage,
		logger:  logger,
	}
}

// handleListSales handles the GET /sales endpoint.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	sales, err := h.storage.GetAll()
	if err != nil {
		h.logger.Error("failed to list sales", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}
	ctx.JSON(http.StatusOK, sales)
}

// handleGetSale handles the GET /sales/:id endpoint.
func (h *salesHandler) handleGetSale(ctx *gin.Context) {
	sale, err := h.storage.Read(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}
	ctx.JSON(http.StatusOK, sale)
}

// handleCreateSale handles the POST /sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var sale vendas.Sale
	if err := ctx.ShouldBindJSON(&sale); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale.ID = uuid.NewString()
	if err := h.storage.Set(&sale); err != nil {
		h.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save sale"})
		return
	}

	h.logger.Info("sale created", zap.String("sale_id", sale.ID))
	ctx.JSON(http.StatusCreated, sale)
}

// handleUpdateSale handles the PUT /sales/:id endpoint. The body must carry
// the complete record; partial patches are rejected by the real backend and
// the stub mirrors that by overwriting every field.
func (h *salesHandler) handleUpdateSale(ctx *gin.Context) {
	saleID := ctx.Param("id")

	var payload vendas.UpdatePayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	current, err := h.storage.Read(saleID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}

	updated := &vendas.Sale{
		ID:                saleID,
		CpfCnpj:           payload.CpfCnpj,
		Region:            payload.Region,
		Ticket:            payload.Ticket,
		CallerIDPhone:     payload.CallerIDPhone,
		Phone:             payload.Phone,
		SaleDate:          payload.SaleDate,
		InternetPlanSpeed: payload.InternetPlanSpeed,
		PaymentMethod:     payload.PaymentMethod,
		InternetType:      payload.InternetType,
		InstallationDate:  payload.InstallationDate,
		InstallationShift: payload.InstallationShift,
		CustomerName:      payload.CustomerName,
		ServiceOrder:      payload.ServiceOrder,
		Extension:         payload.Extension,
		Status:            payload.Status,
		Observation:       payload.Observation,
		User:              current.User,
	}

	if err := h.storage.Set(updated); err != nil {
		h.logger.Error("failed to update sale", zap.String("sale_id", saleID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sale"})
		return
	}

	h.logger.Info("sale updated",
		zap.String("sale_id", saleID),
		zap.String("acting_user_id", payload.UserID),
	)
	ctx.JSON(http.StatusOK, updated)
}

// handleDeleteSale handles the DELETE /sales/:id endpoint.
func (h *salesHandler) handleDeleteSale(ctx *gin.Context) {
	saleID := ctx.Param("id")
	if err := h.storage.Delete(saleID); err != nil {
		if errors.Is(err, ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
			return
		}
		h.logger.Error("failed to delete sale", zap.String("sale_id", saleID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete sale"})
		return
	}

	h.logger.Info("sale deleted", zap.String("sale_id", saleID))
	ctx.JSON(http.StatusOK, gin.H{"deleted": saleID})
}
