package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/SscSPs/savings_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the ledger.
type transactionHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingService
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReportingService) *transactionHandler {
	return &transactionHandler{
		ledgerService:    ls,
		reportingService: rs,
	}
}

// RegisterTransactionRoutes registers the ledger routes and the balance view.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingService) {
	RegisterValidators()
	h := newTransactionHandler(ledgerService, reportingService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.recordTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/daily-counts", h.dailyCounts)
	}
	rg.GET("/balance", h.getBalance)
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Appends an inflow or outflow to the ledger. Transactions cannot be edited or deleted.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to record transaction"
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded successfully", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists ledger entries newest first, optionally filtered by kind and inclusive date range
// @Tags transactions
// @Produce json
// @Param kind query string false "inflow or outflow"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// dailyCounts godoc
// @Summary Transactions per day
// @Description Number of transactions recorded on each calendar date, oldest first
// @Tags transactions
// @Produce json
// @Success 200 {array} domain.DailyCount
// @Failure 500 {object} dto.ErrorResponse "Failed to count transactions"
// @Router /transactions/daily-counts [get]
func (h *transactionHandler) dailyCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	counts, err := h.reportingService.DailyCounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to count transactions")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// getBalance godoc
// @Summary Current balance
// @Description Sum of all inflows minus all outflows
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to compute balance"
// @Router /balance [get]
func (h *transactionHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balance, err := h.reportingService.TotalBalance(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}
