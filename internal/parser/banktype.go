package parser

import "strings"

// BankType selects which statement parsing strategy to apply. It is a
// closed enum: adding a bank means adding a variant here and a case in
// the dispatcher registry, checked at compile time.
type BankType int

const (
	BankGeneric BankType = iota
	BankChase
	BankDiscover
	BankAmex
	BankVentureX
	BankIndian
)

// String returns the canonical name of the bank type.
func (b BankType) String() string {
	switch b {
	case BankChase:
		return "chase"
	case BankDiscover:
		return "discover"
	case BankAmex:
		return "amex"
	case BankVentureX:
		return "venturex"
	case BankIndian:
		return "indian"
	default:
		return "generic"
	}
}

// bankAliases maps declared bank-type strings (including the issuer
// names used by upload forms) to their parser variant.
var bankAliases = map[string]BankType{
	"generic":          BankGeneric,
	"chase":            BankChase,
	"chase sapphire":   BankChase,
	"discover":         BankDiscover,
	"amex":             BankAmex,
	"american express": BankAmex,
	"venturex":         BankVentureX,
	"venture x":        BankVentureX,
	"capital one":      BankVentureX,
	"indian":           BankIndian,
	"indian bank":      BankIndian,
	"sbi":              BankIndian,
	"hdfc bank":        BankIndian,
	"icici bank":       BankIndian,
	"axis bank":        BankIndian,
	"kotak mahindra":   BankIndian,
	"pnb":              BankIndian,
	"bank of baroda":   BankIndian,
	"idfc first bank":  BankIndian,
}

// ParseBankType resolves a declared bank-type string. Unknown or empty
// strings resolve to BankGeneric with ok=false.
func ParseBankType(s string) (BankType, bool) {
	b, ok := bankAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return BankGeneric, false
	}
	return b, true
}
