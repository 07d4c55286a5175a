package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yuzvak/farmshop-service/internal/application"
	"github.com/yuzvak/farmshop-service/internal/domain/customer"
	"github.com/yuzvak/farmshop-service/internal/domain/product"
	"github.com/yuzvak/farmshop-service/internal/domain/transaction"
	"github.com/yuzvak/farmshop-service/internal/infrastructure/monitoring"
	"github.com/yuzvak/farmshop-service/internal/pkg/generator"
	"github.com/yuzvak/farmshop-service/internal/pkg/money"
)

// shell is the line-oriented till interface. Commands operate on a single
// Farm and print their outcome; errors are shown to the operator rather
// than terminating the session.
type shell struct {
	farm      *application.Farm
	in        io.Reader
	out       io.Writer
	discounts map[product.Barcode]int
	seeder    *generator.StockGenerator
}

func newShell(farm *application.Farm, in io.Reader, out io.Writer) *shell {
	return &shell{
		farm:      farm,
		in:        in,
		out:       out,
		discounts: make(map[product.Barcode]int),
		seeder:    generator.NewStockGenerator(),
	}
}

func (s *shell) run() {
	scanner := bufio.NewScanner(s.in)
	s.printf("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !s.dispatch(line) {
			return
		}
		s.printf("> ")
	}
}

// dispatch runs a single command line and reports whether the shell should
// keep going.
func (s *shell) dispatch(line string) bool {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "stock":
		s.stock(args)
	case "stock-bulk":
		s.stockBulk(args)
	case "customer":
		s.customer(args)
	case "customers":
		s.customers()
	case "start":
		s.start(args)
	case "discount":
		s.discount(args)
	case "add":
		s.add(args)
	case "checkout":
		s.checkout()
	case "receipt":
		s.printf("%s\n", s.farm.LastReceipt())
	case "inventory":
		s.inventory()
	case "stats":
		s.stats()
	case "metrics":
		s.metrics()
	case "seed":
		s.seed(args)
	case "help":
		s.help()
	case "quit", "exit":
		return false
	default:
		s.printf("Unknown command %q, type 'help' for commands\n", command)
	}
	return true
}

func (s *shell) stock(args []string) {
	if len(args) != 2 {
		s.printf("Usage: stock <product> <quality>\n")
		return
	}
	barcode, err := product.ParseBarcode(args[0])
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	quality, err := product.ParseQuality(args[1])
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	s.farm.StockProduct(barcode, quality)
	s.printf("Stocked 1 %s (%s)\n", barcode.DisplayName(), quality)
}

func (s *shell) stockBulk(args []string) {
	if len(args) != 3 {
		s.printf("Usage: stock-bulk <product> <quality> <quantity>\n")
		return
	}
	barcode, err := product.ParseBarcode(args[0])
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	quality, err := product.ParseQuality(args[1])
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		s.printf("Quantity must be a number: %v\n", err)
		return
	}
	if err := s.farm.StockProducts(barcode, quality, quantity); err != nil {
		s.printf("%v\n", err)
		return
	}
	s.printf("Stocked %d %s (%s)\n", quantity, barcode.DisplayName(), quality)
}

func (s *shell) customer(args []string) {
	if len(args) < 3 {
		s.printf("Usage: customer <name> <phone> <address>\n")
		return
	}
	phone, err := strconv.Atoi(args[1])
	if err != nil {
		s.printf("Phone number must be a number: %v\n", err)
		return
	}
	c := customer.NewCustomer(args[0], phone, strings.Join(args[2:], " "))
	if err := s.farm.SaveCustomer(c); err != nil {
		s.printf("%v\n", err)
		return
	}
	s.printf("Welcome, %s!\n", c.Name)
}

func (s *shell) customers() {
	records := s.farm.AllCustomers()
	if len(records) == 0 {
		s.printf("No customers registered yet\n")
		return
	}
	for _, c := range records {
		s.printf("%s\n", c)
	}
}

func (s *shell) start(args []string) {
	if len(args) < 2 || len(args) > 3 {
		s.printf("Usage: start <name> <phone> [categorised|special]\n")
		return
	}
	phone, err := strconv.Atoi(args[1])
	if err != nil {
		s.printf("Phone number must be a number: %v\n", err)
		return
	}
	c, err := s.farm.GetCustomer(args[0], phone)
	if err != nil {
		s.printf("%v\n", err)
		return
	}

	kind := ""
	if len(args) == 3 {
		kind = args[2]
	}
	var t *transaction.Transaction
	switch kind {
	case "":
		t = transaction.NewTransaction(c)
	case "categorised":
		t = transaction.NewCategorisedTransaction(c)
	case "special":
		t = transaction.NewSpecialSaleTransaction(c, s.discounts)
	default:
		s.printf("Unknown transaction kind %q, expected categorised or special\n", kind)
		return
	}

	if err := s.farm.StartTransaction(t); err != nil {
		s.printf("%v\n", err)
		return
	}
	if kind == "special" {
		s.discounts = make(map[product.Barcode]int)
	}
	s.printf("Transaction %s opened for %s\n", t.Code(), c.Name)
}

func (s *shell) discount(args []string) {
	if len(args) != 2 {
		s.printf("Usage: discount <product> <percent>\n")
		return
	}
	barcode, err := product.ParseBarcode(args[0])
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	percent, err := strconv.Atoi(args[1])
	if err != nil || percent < 0 || percent > 100 {
		s.printf("Percent must be a number between 0 and 100\n")
		return
	}
	s.discounts[barcode] = percent
	s.printf("Staged %d%% off %s for the next special sale\n", percent, barcode.DisplayName())
}

func (s *shell) add(args []string) {
	if len(args) < 1 || len(args) > 2 {
		s.printf("Usage: add <product> [quantity]\n")
		return
	}
	barcode, err := product.ParseBarcode(args[0])
	if err != nil {
		s.printf("%v\n", err)
		return
	}

	var added int
	if len(args) == 1 {
		added, err = s.farm.AddToCart(barcode)
	} else {
		var quantity int
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			s.printf("Quantity must be a number: %v\n", err)
			return
		}
		added, err = s.farm.AddQuantityToCart(barcode, quantity)
	}
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	if added == 0 {
		s.printf("No %s in stock\n", barcode.DisplayName())
		return
	}
	s.printf("Added %d %s to the cart\n", added, barcode.DisplayName())
}

func (s *shell) checkout() {
	recorded, err := s.farm.Checkout()
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	if !recorded {
		s.printf("Nothing purchased, no receipt to print\n")
		return
	}
	s.printf("%s\n", s.farm.LastReceipt())
}

func (s *shell) inventory() {
	stock := s.farm.AllStock()
	if len(stock) == 0 {
		s.printf("The inventory is empty\n")
		return
	}
	for _, p := range stock {
		s.printf("%s\n", p)
	}
	s.printf("%d units in stock\n", len(stock))
}

func (s *shell) stats() {
	h := s.farm.History()
	s.printf("Transactions made: %d\n", h.TotalTransactionsMade())
	s.printf("Products sold: %d\n", h.TotalProductsSold())
	s.printf("Gross earnings: %s\n", money.FormatCents(h.GrossEarnings()))
	for _, barcode := range product.Barcodes() {
		s.printf("  %s: sold %d, earned %s\n",
			barcode.DisplayName(),
			h.TotalProductsSoldByType(barcode),
			money.FormatCents(h.GrossEarningsByType(barcode)))
	}
	if h.TotalTransactionsMade() == 0 {
		return
	}
	s.printf("Most popular product: %s\n", h.MostPopularProduct().DisplayName())
	if top := h.HighestGrossingTransaction(); top != nil {
		s.printf("Highest grossing transaction: %s (%s)\n", top.Code(), money.FormatCents(top.Total()))
	}
	s.printf("Average spend per visit: %.1f cents\n", h.AverageSpendPerVisit())
}

func (s *shell) metrics() {
	text, err := monitoring.DumpText()
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	s.printf("%s", text)
}

func (s *shell) seed(args []string) {
	if len(args) != 1 {
		s.printf("Usage: seed <count>\n")
		return
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 1 {
		s.printf("Count must be a positive number\n")
		return
	}
	for _, p := range s.seeder.GenerateStock(count) {
		s.farm.StockProduct(p.Barcode, p.Quality)
	}
	s.printf("Seeded %d random units\n", count)
}

func (s *shell) help() {
	s.printf(`Commands:
  stock <product> <quality>               stock a single unit
  stock-bulk <product> <quality> <qty>    stock several units at once
  customer <name> <phone> <address>       register a customer
  customers                               list registered customers
  start <name> <phone> [categorised|special]
                                          open a transaction for a customer
  discount <product> <percent>            stage a discount for the next special sale
  add <product> [qty]                     move stock into the open cart
  checkout                                close the transaction and print the receipt
  receipt                                 reprint the last receipt
  inventory                               list the current stock
  stats                                   show sales figures
  metrics                                 dump prometheus counters
  seed <count>                            stock random units
  quit                                    close up
`)
}

func (s *shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
