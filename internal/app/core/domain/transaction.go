package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳
	TransactionTypeTransfer TransactionType = 3
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	case TransactionTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Transaction 一筆記帳請求，成功後作為回執交給呼叫端
type Transaction struct {
	// TransactionID: 追蹤號 (UUID)，重複的 ID 不會再次入帳
	TransactionID uuid.UUID
	// From, To: 帳戶 ID，存款只用 To，提款只用 From
	From string
	To   string
	// Amount: 金額
	Amount decimal.Decimal
	// CreatedAt: 交易時間 (unix millis)
	CreatedAt int64
	Type      TransactionType
}

// NewTransaction 建立帶有新 UUID 的交易
func NewTransaction(txType TransactionType, from, to string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TransactionID: uuid.New(),
		From:          from,
		To:            to,
		Amount:        amount,
		CreatedAt:     time.Now().UnixMilli(),
		Type:          txType,
	}
}

// AccountIDs 回傳交易涉及的帳戶 ID
func (t *Transaction) AccountIDs() (ids []string) {
	ids = make([]string, 0, 2)
	switch t.Type {
	case TransactionTypeTransfer:
		ids = append(ids, t.From, t.To)
	case TransactionTypeDeposit:
		ids = append(ids, t.To)
	case TransactionTypeWithdraw:
		ids = append(ids, t.From)
	}
	return ids
}
