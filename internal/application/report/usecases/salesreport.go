// Package usecases implements the reporting operations.
package usecases

import (
	"context"

	"github.com/venda-inc/venda/internal/application/report/dto"
	"github.com/venda-inc/venda/internal/domain/sale"
	"github.com/venda-inc/venda/internal/shared/biztime"
	"github.com/venda-inc/venda/internal/shared/errors"
	"github.com/venda-inc/venda/internal/shared/logger"
)

type SalesReportUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewSalesReportUseCase(saleRepo sale.Repository, logger logger.Interface) *SalesReportUseCase {
	return &SalesReportUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Execute aggregates sales between two business-timezone dates, inclusive.
func (uc *SalesReportUseCase) Execute(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesReportResponse, error) {
	fromDay, err := biztime.ParseDateInBizTimezone(req.From)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	toDay, err := biztime.ParseDateInBizTimezone(req.To)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if toDay.Before(fromDay) {
		return nil, errors.NewValidationError("report range end precedes its start")
	}

	from := biztime.StartOfDayUTC(fromDay)
	to := biztime.EndOfDayUTC(toDay)

	report, err := uc.saleRepo.Report(ctx, from, to)
	if err != nil {
		uc.logger.Errorw("failed to build sales report", "error", err, "from", req.From, "to", req.To)
		return nil, err
	}

	resp := &dto.SalesReportResponse{
		From:       report.From,
		To:         report.To,
		SaleCount:  report.SaleCount,
		GrandTotal: report.GrandTotal,
	}
	for _, d := range report.Daily {
		resp.Daily = append(resp.Daily, dto.DailyTotalResponse{
			Day:   d.Day.Format("2006-01-02"),
			Count: d.Count,
			Total: d.Total,
		})
	}
	for _, p := range report.TopProducts {
		resp.TopProducts = append(resp.TopProducts, dto.ProductTotalResponse{
			ProductID: p.ProductID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Total:     p.Total,
		})
	}
	return resp, nil
}
