package console

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
)

// Runner 依腳本呼叫 CoreUseCase，並把每個結果交給 Presenter
type Runner struct {
	core      *usecase.CoreUseCase
	presenter *Presenter
}

func NewRunner(core *usecase.CoreUseCase, presenter *Presenter) *Runner {
	return &Runner{
		core:      core,
		presenter: presenter,
	}
}

// Run 執行腳本並印出最終餘額
//
// 帳務錯誤只會輸出，不會中斷腳本；只有 ctx 取消或列出帳戶失敗時回傳錯誤。
func (r *Runner) Run(ctx context.Context, script *Script) error {
	for _, seed := range script.Accounts {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Apply(ctx, Step{Op: OpCreate, Name: seed.Name, ID: seed.ID, Amount: seed.Balance})
	}
	for _, step := range script.Operations {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Apply(ctx, step)
	}

	accounts, err := r.core.Accounts(ctx)
	if err != nil {
		return err
	}
	r.presenter.FinalBalances(accounts)
	return nil
}

// Apply 執行單一步驟
func (r *Runner) Apply(ctx context.Context, step Step) {
	switch strings.ToLower(strings.TrimSpace(step.Op)) {
	case OpCreate:
		amount, ok := r.amount(step.Amount, true)
		if !ok {
			return
		}
		account, err := r.core.CreateAccount(ctx, step.Name, step.ID, amount)
		if err != nil {
			r.presenter.CreateFailed(step.ID, err)
			return
		}
		r.presenter.AccountCreated(account)
	case OpDeposit:
		amount, ok := r.amount(step.Amount, false)
		if !ok {
			return
		}
		tran, err := r.core.Deposit(ctx, step.ID, amount)
		if err != nil {
			r.presenter.DepositFailed(step.ID, err)
			return
		}
		r.presenter.Deposited(tran)
	case OpWithdraw:
		amount, ok := r.amount(step.Amount, false)
		if !ok {
			return
		}
		tran, err := r.core.Withdraw(ctx, step.ID, amount)
		if err != nil {
			r.presenter.WithdrawFailed(step.ID, err)
			return
		}
		r.presenter.Withdrawn(tran)
	case OpTransfer:
		amount, ok := r.amount(step.Amount, false)
		if !ok {
			return
		}
		tran, err := r.core.Transfer(ctx, step.From, step.To, amount)
		if err != nil {
			r.presenter.TransferFailed(step.From, err)
			return
		}
		r.presenter.Transferred(tran)
	case OpBalance:
		balance, err := r.core.GetBalance(ctx, step.ID)
		if err != nil {
			r.presenter.BalanceFailed(step.ID, err)
			return
		}
		r.presenter.Balance(step.ID, balance)
	default:
		r.presenter.Unsupported(step.Op)
	}
}

// amount 解析步驟金額，失敗時輸出錯誤並回傳 false
func (r *Runner) amount(raw string, emptyIsZero bool) (decimal.Decimal, bool) {
	d, err := parseStepAmount(raw, emptyIsZero)
	if err != nil {
		r.presenter.failed(err)
		return decimal.Zero, false
	}
	return d, true
}

// parseStepAmount 建立帳戶時未填初始餘額視為 0
func parseStepAmount(raw string, emptyIsZero bool) (decimal.Decimal, error) {
	if emptyIsZero && strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return domain.ParseAmount(raw)
}
