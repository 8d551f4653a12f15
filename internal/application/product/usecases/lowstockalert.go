package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/venda-inc/venda/internal/domain/product"
	"github.com/venda-inc/venda/internal/infrastructure/email"
	"github.com/venda-inc/venda/internal/shared/logger"
)

// LowStockAlertUseCase mails a summary of products below their minimum stock
// level. It runs from the scheduler; Execute returns the number of products
// reported.
type LowStockAlertUseCase struct {
	productRepo product.Repository
	mailer      email.Mailer
	recipients  []string
	logger      logger.Interface
}

func NewLowStockAlertUseCase(
	productRepo product.Repository,
	mailer email.Mailer,
	recipients []string,
	logger logger.Interface,
) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{
		productRepo: productRepo,
		mailer:      mailer,
		recipients:  recipients,
		logger:      logger,
	}
}

func (uc *LowStockAlertUseCase) Execute(ctx context.Context) (int, error) {
	products, err := uc.productRepo.ListLowStock(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 || len(uc.recipients) == 0 {
		return 0, nil
	}

	var body strings.Builder
	body.WriteString("The following products are below their minimum stock level:\n\n")
	for _, p := range products {
		fmt.Fprintf(&body, "- %s (SKU %s): %d in stock, minimum %d\n",
			p.Name, p.SKU, p.Stock, p.MinStock)
	}

	subject := fmt.Sprintf("Low stock alert: %d products need restocking", len(products))
	if err := uc.mailer.Send(uc.recipients, subject, body.String()); err != nil {
		return 0, err
	}

	return len(products), nil
}
