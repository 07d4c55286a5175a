package ports

import (
	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
)

type ReceiptRenderer interface {
	Render(r *transaction.Receipt) string
}
