package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/reports"
)

// ReportHandler reportes contables y métricas del dashboard.
type ReportHandler struct {
	ledgerUC    *reports.LedgerUseCase
	pnlUC       *reports.ProfitLossUseCase
	dashboardUC *reports.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(ledgerUC *reports.LedgerUseCase, pnlUC *reports.ProfitLossUseCase, dashboardUC *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{ledgerUC: ledgerUC, pnlUC: pnlUC, dashboardUC: dashboardUC}
}

// Ledger libro mayor reconstruido del rango pedido (mes en curso por defecto).
// GET /api/reports/ledger?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.DateRangeRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de rango inválidos"})
	}
	resp, err := h.ledgerUC.GetLedger(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ProfitLoss estado de resultados del rango pedido.
// GET /api/reports/pnl?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) ProfitLoss(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.DateRangeRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de rango inválidos"})
	}
	resp, err := h.pnlUC.GetProfitLoss(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Dashboard métricas rápidas del mes en curso.
// GET /api/analytics/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.dashboardUC.GetMetrics(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
