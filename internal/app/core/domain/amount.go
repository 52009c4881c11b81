package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyScale 顯示用的小數位數
const CurrencyScale = 2

// ParseAmount 解析金額字串，允許前綴 "$"
//
// 參數:
//
//	s: 金額字串，例如 "1000"、"$12.50"
//
// 回傳:
//
//	decimal.Decimal: 金額
//	error: ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatAmount 以 CurrencyScale 位小數輸出金額
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(CurrencyScale)
}
