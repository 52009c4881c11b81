package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/logging"
)

func newCore(t *testing.T) *usecase.CoreUseCase {
	t.Helper()
	return usecase.NewCoreUseCase(memory.NewMapLedger(), logging.Discard())
}

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func mustBalance(t *testing.T, c *usecase.CoreUseCase, id string) decimal.Decimal {
	t.Helper()
	b, err := c.GetBalance(context.Background(), id)
	if err != nil {
		t.Fatalf("GetBalance(%s): %v", id, err)
	}
	return b
}

func TestCreateAccount(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()

	a, err := c.CreateAccount(ctx, "John Doe", "@johndoe", amt(1000))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != "@johndoe" || !a.Balance.Equal(amt(1000)) {
		t.Fatalf("unexpected account %+v", a)
	}
	if got := mustBalance(t, c, "@johndoe"); !got.Equal(amt(1000)) {
		t.Fatalf("balance=%s want=1000", got)
	}

	if _, err := c.CreateAccount(ctx, "Impostor", "@johndoe", amt(1)); !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
	if _, err := c.CreateAccount(ctx, "Impostor", "@johndoe", amt(-1)); !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Fatalf("duplicate id with negative balance: expected ErrDuplicateAccount, got %v", err)
	}
	if got := mustBalance(t, c, "@johndoe"); !got.Equal(amt(1000)) {
		t.Fatalf("duplicate create changed balance to %s", got)
	}
	accounts, _ := c.Accounts(ctx)
	if len(accounts) != 1 || accounts[0].Name != "John Doe" {
		t.Fatalf("unexpected accounts %+v", accounts)
	}

	if _, err := c.CreateAccount(ctx, "Neg", "@neg", amt(-1)); !errors.Is(err, domain.ErrAmountMustBePositive) {
		t.Fatalf("expected ErrAmountMustBePositive, got %v", err)
	}
	if _, err := c.CreateAccount(ctx, "Empty", "", amt(1)); !errors.Is(err, domain.ErrInvalidAccountID) {
		t.Fatalf("expected ErrInvalidAccountID, got %v", err)
	}
}

func TestDepositWithdraw(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()
	_, _ = c.CreateAccount(ctx, "A", "a", amt(100))

	tx, err := c.Deposit(ctx, "a", amt(50))
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if tx.Type != domain.TransactionTypeDeposit || tx.To != "a" || !tx.Amount.Equal(amt(50)) {
		t.Fatalf("unexpected receipt %+v", tx)
	}
	if got := mustBalance(t, c, "a"); !got.Equal(amt(150)) {
		t.Fatalf("balance=%s want=150", got)
	}

	if _, err := c.Withdraw(ctx, "a", amt(150)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if got := mustBalance(t, c, "a"); !got.IsZero() {
		t.Fatalf("balance=%s want=0", got)
	}

	if _, err := c.Withdraw(ctx, "a", amt(1)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := c.Deposit(ctx, "a", amt(-5)); !errors.Is(err, domain.ErrAmountMustBePositive) {
		t.Fatalf("expected ErrAmountMustBePositive, got %v", err)
	}
	if _, err := c.Deposit(ctx, "nobody", amt(5)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if got := mustBalance(t, c, "a"); !got.IsZero() {
		t.Fatalf("balance=%s want=0 after failed operations", got)
	}
}

func TestTransfer(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()
	_, _ = c.CreateAccount(ctx, "A", "a", amt(1000))
	_, _ = c.CreateAccount(ctx, "B", "b", amt(500))

	if _, err := c.Transfer(ctx, "a", "b", amt(300)); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := mustBalance(t, c, "a"); !got.Equal(amt(700)) {
		t.Fatalf("a=%s want=700", got)
	}
	if got := mustBalance(t, c, "b"); !got.Equal(amt(800)) {
		t.Fatalf("b=%s want=800", got)
	}
}

func TestTransferFailuresLeaveBalances(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()
	_, _ = c.CreateAccount(ctx, "A", "a", amt(1000))
	_, _ = c.CreateAccount(ctx, "B", "b", amt(500))

	if _, err := c.Transfer(ctx, "b", "a", amt(1000)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if _, err := c.Transfer(ctx, "a", "ghost", amt(10)); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if got := mustBalance(t, c, "a"); !got.Equal(amt(1000)) {
		t.Fatalf("a=%s want=1000", got)
	}
	if got := mustBalance(t, c, "b"); !got.Equal(amt(500)) {
		t.Fatalf("b=%s want=500", got)
	}
}

func TestTransferSameAccount(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()
	_, _ = c.CreateAccount(ctx, "A", "a", amt(100))

	if _, err := c.Transfer(ctx, "a", "a", amt(60)); err != nil {
		t.Fatalf("self transfer: %v", err)
	}
	if got := mustBalance(t, c, "a"); !got.Equal(amt(100)) {
		t.Fatalf("a=%s want=100", got)
	}
	if _, err := c.Transfer(ctx, "a", "a", amt(101)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := mustBalance(t, c, "a"); !got.Equal(amt(100)) {
		t.Fatalf("a=%s want=100", got)
	}
}

func TestZeroAmountsAccepted(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()

	if _, err := c.CreateAccount(ctx, "Zero", "z", decimal.Zero); err != nil {
		t.Fatalf("create with zero balance: %v", err)
	}
	_, _ = c.CreateAccount(ctx, "B", "b", amt(10))
	if _, err := c.Deposit(ctx, "z", decimal.Zero); err != nil {
		t.Fatalf("zero deposit: %v", err)
	}
	if _, err := c.Withdraw(ctx, "z", decimal.Zero); err != nil {
		t.Fatalf("zero withdraw: %v", err)
	}
	if _, err := c.Transfer(ctx, "z", "b", decimal.Zero); err != nil {
		t.Fatalf("zero transfer: %v", err)
	}
	if got := mustBalance(t, c, "z"); !got.IsZero() {
		t.Fatalf("z=%s want=0", got)
	}
	if got := mustBalance(t, c, "b"); !got.Equal(amt(10)) {
		t.Fatalf("b=%s want=10", got)
	}
}

func TestGetBalanceNotFound(t *testing.T) {
	c := newCore(t)
	if _, err := c.GetBalance(context.Background(), "ghost"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountsSortedByID(t *testing.T) {
	c := newCore(t)
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := c.CreateAccount(ctx, id, id, amt(1)); err != nil {
			t.Fatal(err)
		}
	}
	accounts, err := c.Accounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 3 || accounts[0].ID != "a" || accounts[1].ID != "b" || accounts[2].ID != "c" {
		t.Fatalf("unexpected order %+v", accounts)
	}
}
