package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// Presenter 將操作結果輸出成主控台文字，一個結果一行
type Presenter struct {
	w io.Writer
}

func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

func money(d decimal.Decimal) string {
	return "$" + domain.FormatAmount(d)
}

// AccountCreated 建立帳戶成功
func (p *Presenter) AccountCreated(account *domain.Account) {
	p.printf("Created account %s with initial balance %s\n", account.ID, money(account.Balance))
}

// CreateFailed 建立帳戶失敗
func (p *Presenter) CreateFailed(id string, err error) {
	if errors.Is(err, domain.ErrDuplicateAccount) {
		p.printf("Account %s already exists.\n", id)
		return
	}
	p.failed(err)
}

// Deposited 存款成功
func (p *Presenter) Deposited(tran *domain.Transaction) {
	p.printf("Deposited %s into account %s\n", money(tran.Amount), tran.To)
}

// DepositFailed 存款失敗
func (p *Presenter) DepositFailed(id string, err error) {
	if errors.Is(err, domain.ErrAccountNotFound) {
		p.notFound(id)
		return
	}
	p.failed(err)
}

// Withdrawn 提款成功
func (p *Presenter) Withdrawn(tran *domain.Transaction) {
	p.printf("Withdrawn %s from account %s\n", money(tran.Amount), tran.From)
}

// WithdrawFailed 提款失敗
func (p *Presenter) WithdrawFailed(id string, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		p.printf("Insufficient funds in account %s\n", id)
	case errors.Is(err, domain.ErrAccountNotFound):
		p.notFound(id)
	default:
		p.failed(err)
	}
}

// Transferred 轉帳成功
func (p *Presenter) Transferred(tran *domain.Transaction) {
	p.printf("Transferred %s from account %s to account %s\n", money(tran.Amount), tran.From, tran.To)
}

// TransferFailed 轉帳失敗
func (p *Presenter) TransferFailed(fromID string, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		p.printf("Insufficient funds in account %s for transfer.\n", fromID)
	case errors.Is(err, domain.ErrAccountNotFound):
		p.printf("One or both accounts do not exist.\n")
	default:
		p.failed(err)
	}
}

// Balance 單一帳戶餘額
func (p *Presenter) Balance(id string, balance decimal.Decimal) {
	p.printf("Account %s balance: %s\n", id, money(balance))
}

// BalanceFailed 查詢餘額失敗
func (p *Presenter) BalanceFailed(id string, err error) {
	if errors.Is(err, domain.ErrAccountNotFound) {
		p.notFound(id)
		return
	}
	p.failed(err)
}

// FinalBalances 列出所有帳戶餘額
func (p *Presenter) FinalBalances(accounts []domain.Account) {
	p.printf("Final balances:\n")
	for _, a := range accounts {
		p.Balance(a.ID, a.Balance)
	}
}

// Unsupported 未知的操作
func (p *Presenter) Unsupported(op string) {
	p.printf("Unknown operation %q, skipped.\n", op)
}

func (p *Presenter) notFound(id string) {
	p.printf("Account %s does not exist.\n", id)
}

func (p *Presenter) failed(err error) {
	p.printf("Error: %v\n", err)
}

// printf 主控台輸出失敗時沒有其他地方可回報，忽略錯誤
func (p *Presenter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}
