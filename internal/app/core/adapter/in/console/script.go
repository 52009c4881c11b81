package console

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 支援的操作
const (
	OpCreate   = "create"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
	OpBalance  = "balance"
)

// AccountSeed 腳本開始時建立的帳戶
type AccountSeed struct {
	Name    string `yaml:"name"`
	ID      string `yaml:"id"`
	Balance string `yaml:"balance"`
}

// Step 一個操作步驟，依 Op 使用不同欄位
//
//	create:   name, id, amount (初始餘額)
//	deposit:  id, amount
//	withdraw: id, amount
//	transfer: from, to, amount
//	balance:  id
type Step struct {
	Op     string `yaml:"op"`
	Name   string `yaml:"name,omitempty"`
	ID     string `yaml:"id,omitempty"`
	From   string `yaml:"from,omitempty"`
	To     string `yaml:"to,omitempty"`
	Amount string `yaml:"amount,omitempty"`
}

// Script 操作腳本
type Script struct {
	Accounts   []AccountSeed `yaml:"accounts"`
	Operations []Step        `yaml:"operations"`
}

// LoadScript 讀取 YAML 操作腳本
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript 解析 YAML 操作腳本
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}

// DefaultScript 內建示範：建立兩個帳戶、存款、轉帳，最後一筆轉帳因餘額不足失敗
func DefaultScript() *Script {
	return &Script{
		Accounts: []AccountSeed{
			{Name: "John Doe", ID: "@johndoe", Balance: "1000"},
			{Name: "Jane Doe", ID: "@janedoe", Balance: "500"},
		},
		Operations: []Step{
			{Op: OpDeposit, ID: "@johndoe", Amount: "200"},
			{Op: OpTransfer, From: "@johndoe", To: "@janedoe", Amount: "300"},
			{Op: OpTransfer, From: "@janedoe", To: "@johndoe", Amount: "1000"},
		},
	}
}
