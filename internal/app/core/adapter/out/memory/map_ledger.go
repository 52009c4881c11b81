package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
)

// MapLedger 是以 map 持有帳戶的記憶體帳本
//
// 結構:
//
//	accounts: 帳戶資料 Map (ID → *Account)
//	mu: 保護帳戶資料
//	processedTransactions: 已入帳的交易 ID
type MapLedger struct {
	accounts map[string]*domain.Account
	mu       sync.RWMutex
	// 已處理過的交易
	processedTransactions map[uuid.UUID]struct{}
}

// NewMapLedger 建立一個空的 MapLedger
func NewMapLedger() *MapLedger {
	return &MapLedger{
		accounts:              make(map[string]*domain.Account),
		processedTransactions: make(map[uuid.UUID]struct{}),
	}
}

// CreateAccount 新增帳戶
//
// 參數:
//
//	ctx: 上下文
//	account: 帳戶，寫入後由帳本持有
//
// 回傳:
//
//	error: domain.ErrDuplicateAccount (既有帳戶不變更)
func (m *MapLedger) CreateAccount(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		return domain.ErrInvalidAccountID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID]; ok {
		return domain.ErrDuplicateAccount
	}
	owned := *account
	m.accounts[account.ID] = &owned
	return nil
}

// GetAccountBalance 取得指定帳戶的當前餘額
func (m *MapLedger) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accounts[accountID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return account.Balance, nil
}

// ListAccounts 回傳所有帳戶的值拷貝，順序不固定
func (m *MapLedger) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, *a)
	}
	return out, nil
}

// PostTransaction 處理交易請求
//
// 同一個 TransactionID 只會入帳一次，重送直接回傳 nil。
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件
//
// 回傳:
//
//	error: 處理錯誤 (帳戶不存在、餘額不足、金額為負)
func (m *MapLedger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.processedTransactions[tran.TransactionID]; ok {
		return nil
	}

	// 先確認涉及的帳戶都存在，避免部分變更
	for _, id := range tran.AccountIDs() {
		if _, ok := m.accounts[id]; !ok {
			return domain.ErrAccountNotFound
		}
	}

	var err error
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		err = m.handleDeposit(tran)
	case domain.TransactionTypeWithdraw:
		err = m.handleWithdraw(tran)
	case domain.TransactionTypeTransfer:
		err = m.handleTransfer(tran)
	default:
		return domain.ErrUnknownTransactionType
	}

	if err == nil {
		m.processedTransactions[tran.TransactionID] = struct{}{}
	}
	return err
}

// handleDeposit 處理存款邏輯
func (m *MapLedger) handleDeposit(tran *domain.Transaction) error {
	return m.accounts[tran.To].Deposit(tran.Amount)
}

// handleWithdraw 處理提款邏輯
func (m *MapLedger) handleWithdraw(tran *domain.Transaction) error {
	return m.accounts[tran.From].Withdraw(tran.Amount)
}

// handleTransfer 處理轉帳邏輯
// 提款失敗時不存款；提款成功後存款不會失敗 (金額已通過非負檢查)
func (m *MapLedger) handleTransfer(tran *domain.Transaction) error {
	fromAccount := m.accounts[tran.From]
	toAccount := m.accounts[tran.To]

	if err := fromAccount.Withdraw(tran.Amount); err != nil {
		return err
	}
	return toAccount.Deposit(tran.Amount)
}

var _ usecase.Ledger = (*MapLedger)(nil)
