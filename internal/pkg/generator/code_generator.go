package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type CodeGenerator struct{}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

func (g *CodeGenerator) GenerateTransactionCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("TXN-%s", id[:10])
}
