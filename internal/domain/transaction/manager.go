package transaction

import (
	domainErrors "github.com/yuzvak/farmshop-service/internal/domain/errors"
	"github.com/yuzvak/farmshop-service/internal/domain/product"
	"github.com/yuzvak/farmshop-service/internal/pkg/clock"
	"github.com/yuzvak/farmshop-service/internal/pkg/generator"
)

// Manager opens and closes transactions, ensuring only one transaction is
// ongoing at any given time.
type Manager struct {
	clk     clock.Clock
	gen     *generator.CodeGenerator
	log     []*Transaction
	current *Transaction
}

func NewManager(clk clock.Clock, gen *generator.CodeGenerator) *Manager {
	return &Manager{
		clk: clk,
		gen: gen,
		log: make([]*Transaction, 0),
	}
}

func (m *Manager) HasOngoingTransaction() bool {
	for _, t := range m.log {
		if !t.IsFinalised() {
			return true
		}
	}
	return false
}

// SetOngoingTransaction starts managing the given transaction, stamping it
// with a code and its opening time. Fails while another transaction is still
// ongoing.
func (m *Manager) SetOngoingTransaction(t *Transaction) error {
	if m.HasOngoingTransaction() {
		return domainErrors.ErrFailedTransaction
	}
	t.code = m.gen.GenerateTransactionCode()
	t.openedAt = m.clk.Now()
	m.log = append(m.log, t)
	m.current = t
	return nil
}

// RegisterPendingPurchase adds the given product to the cart of the customer
// associated with the ongoing transaction. The product must already have
// been retrieved from the inventory.
func (m *Manager) RegisterPendingPurchase(p product.Product) error {
	if !m.HasOngoingTransaction() {
		return domainErrors.ErrFailedTransaction
	}
	m.current.AssociatedCustomer().Cart().AddProduct(p)
	return nil
}

// CloseCurrentTransaction finalises the ongoing transaction and readies the
// manager to accept a new one.
func (m *Manager) CloseCurrentTransaction() (*Transaction, error) {
	if !m.HasOngoingTransaction() {
		return nil, domainErrors.ErrFailedTransaction
	}
	m.current.finalisedAt = m.clk.Now()
	m.current.Finalise()
	return m.current, nil
}
