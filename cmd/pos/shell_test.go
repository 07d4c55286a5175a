package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yuzvak/farmshop-service/internal/application"
	"github.com/yuzvak/farmshop-service/internal/application/ports"
	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/directory"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/display"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/inventory"
	"github.com/yuzvak/farmshop-service/internal/pkg/clock"
	"github.com/yuzvak/farmshop-service/internal/pkg/generator"
)

func runSession(t *testing.T, inv ports.Inventory, lines ...string) string {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	manager := transaction.NewManager(clk, generator.NewCodeGenerator())
	farm := application.NewFarm(inv, directory.NewAddressBook(), display.NewReceiptPrinter("Farm Shop"), manager)

	var out bytes.Buffer
	newShell(farm, strings.NewReader(strings.Join(lines, "\n")), &out).run()
	return out.String()
}

func TestShellPlainSession(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"stock-bulk egg regular 2",
		"customer Alice 123456 14 Pine Lane",
		"start Alice 123456",
		"add egg 2",
		"checkout",
		"stats",
		"quit",
	)

	assert.Contains(t, output, "Stocked 2 egg (REGULAR)")
	assert.Contains(t, output, "Welcome, Alice!")
	assert.Contains(t, output, "Added 2 egg to the cart")
	assert.Contains(t, output, "Total: $1.00")
	assert.Contains(t, output, "Thank you for shopping with us, Alice!")
	assert.Contains(t, output, "Transactions made: 1")
	assert.Contains(t, output, "Products sold: 2")
}

func TestShellSpecialSaleSession(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"stock-bulk egg regular 2",
		"customer Alice 123456 14 Pine Lane",
		"discount egg 25",
		"start Alice 123456 special",
		"add egg 2",
		"checkout",
	)

	assert.Contains(t, output, "Staged 25% off egg for the next special sale")
	assert.Contains(t, output, "Discount applied! 25% off egg")
	assert.Contains(t, output, "Total: $0.75")
	assert.Contains(t, output, "***** TOTAL SAVINGS: $0.25 *****")
}

func TestShellRejectsCartWithoutTransaction(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"stock egg regular",
		"add egg",
	)

	assert.Contains(t, output, "cannot add to cart when no customer has started shopping")
}

func TestShellUnknownCustomer(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"start Nobody 1",
	)

	assert.Contains(t, output, "customer not found")
}

func TestShellBasicInventoryRefusesBulk(t *testing.T) {
	output := runSession(t, inventory.NewBasic(),
		"stock-bulk milk gold 3",
	)

	assert.Contains(t, output, "not fancy enough")
}

func TestShellUnknownCommand(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"dance",
	)

	assert.Contains(t, output, `Unknown command "dance"`)
}

func TestShellReceiptBeforeFirstSale(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"receipt",
	)

	assert.Contains(t, output, "Transaction still in progress")
}

func TestShellInventoryListing(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"stock wool iridium",
		"inventory",
	)

	assert.Contains(t, output, "wool: 2850c *IRIDIUM*")
	assert.Contains(t, output, "1 units in stock")
}

func TestShellSeed(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"seed 5",
		"inventory",
	)

	assert.Contains(t, output, "Seeded 5 random units")
	assert.Contains(t, output, "5 units in stock")
}

func TestShellMetricsDump(t *testing.T) {
	output := runSession(t, inventory.NewFancy(),
		"stock egg regular",
		"metrics",
	)

	assert.Contains(t, output, "farm_products_stocked_total")
	assert.Contains(t, output, "farm_stock_level")
}
