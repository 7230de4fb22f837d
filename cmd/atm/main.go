package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"atm-ledger/internal/bank"
	"atm-ledger/internal/config"
	"atm-ledger/internal/events/kafka"
	"atm-ledger/internal/events/noop"
	"atm-ledger/internal/interfaces"
	"atm-ledger/internal/pin"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	// A missing .env is fine; the config layer has defaults for everything.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting ATM",
		slog.String("env", cfg.Env),
		slog.String("bank", cfg.BankName),
	)

	var publisher interfaces.EventPublisher = noop.NewPublisher()
	if cfg.Kafka.Enabled {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers)
		log.Info("Kafka event publishing enabled",
			slog.String("brokers", strings.Join(cfg.Kafka.Brokers, ",")),
		)
	}
	defer publisher.Close()

	b := bank.New(cfg.BankName, pin.SHA3Hasher{}, publisher)

	// Seed a demo user with a savings and a checking account so the
	// simulation has something to log into.
	demo := b.AddUser("John", "Doe", "1234")
	checking := b.NewAccount("Checking")
	demo.AddAccount(checking)

	log.Info("Seeded demo user",
		slog.String("user_id", demo.ID),
		slog.Int("accounts", demo.AccountCount()),
	)

	sc := bufio.NewScanner(os.Stdin)
	for {
		user := loginPrompt(b, sc)
		if user == nil {
			return // EOF on stdin, normal termination
		}
		if !userMenu(user, sc) {
			return
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

// loginPrompt loops until a user ID/PIN pair authenticates. Returns nil
// when stdin is exhausted.
func loginPrompt(b *bank.Bank, sc *bufio.Scanner) *bank.User {
	for {
		fmt.Printf("\n\nWelcome to %s\n\n", b.Name)

		userID, ok := prompt(sc, "Enter user ID: ")
		if !ok {
			return nil
		}
		pinCode, ok := prompt(sc, "Enter PIN: ")
		if !ok {
			return nil
		}

		user, err := b.Login(userID, pinCode)
		if err != nil {
			fmt.Println("Incorrect user ID/PIN combination. Please try again.")
			continue
		}
		return user
	}
}

// userMenu drives the session iteratively until the user quits (logging
// them out) or stdin ends. Returns false only on EOF.
func userMenu(user *bank.User, sc *bufio.Scanner) bool {
	for {
		fmt.Printf("\nWelcome %s, what would you like to do?\n\n", user.FirstName)
		for i, line := range user.AccountSummaries() {
			fmt.Printf("  %d) %s\n", i+1, line)
		}
		fmt.Println()
		fmt.Println("  1) Show account transaction history")
		fmt.Println("  2) Withdraw")
		fmt.Println("  3) Deposit")
		fmt.Println("  4) Transfer")
		fmt.Println("  5) Quit")
		fmt.Println()

		choiceStr, ok := prompt(sc, "Enter choice: ")
		if !ok {
			return false
		}
		choice, err := strconv.Atoi(choiceStr)
		if err != nil || choice < 1 || choice > 5 {
			fmt.Println("Invalid choice. Please choose 1-5.")
			continue
		}

		switch choice {
		case 1:
			ok = showHistory(user, sc)
		case 2:
			ok = withdraw(user, sc)
		case 3:
			ok = deposit(user, sc)
		case 4:
			ok = transfer(user, sc)
		case 5:
			return true
		}
		if !ok {
			return false
		}
	}
}

func showHistory(user *bank.User, sc *bufio.Scanner) bool {
	idx, ok := chooseAccount(user, sc, "show history for")
	if !ok {
		return false
	}

	id, err := user.AccountID(idx)
	if err != nil {
		fmt.Println(err)
		return true
	}
	history, err := user.TransactionHistory(idx)
	if err != nil {
		fmt.Println(err)
		return true
	}

	fmt.Printf("\nTransaction history for account %s\n", id)
	for _, line := range history {
		fmt.Println(line)
	}
	return true
}

func withdraw(user *bank.User, sc *bufio.Scanner) bool {
	idx, ok := chooseAccount(user, sc, "withdraw from")
	if !ok {
		return false
	}
	amount, ok := promptAmount(sc)
	if !ok {
		return false
	}
	memo, ok := prompt(sc, "Enter a memo: ")
	if !ok {
		return false
	}

	reportResult(user.Withdraw(idx, amount, memo))
	return true
}

func deposit(user *bank.User, sc *bufio.Scanner) bool {
	idx, ok := chooseAccount(user, sc, "deposit to")
	if !ok {
		return false
	}
	amount, ok := promptAmount(sc)
	if !ok {
		return false
	}
	memo, ok := prompt(sc, "Enter a memo: ")
	if !ok {
		return false
	}

	reportResult(user.Deposit(idx, amount, memo))
	return true
}

func transfer(user *bank.User, sc *bufio.Scanner) bool {
	fromIdx, ok := chooseAccount(user, sc, "transfer from")
	if !ok {
		return false
	}
	toIdx, ok := chooseAccount(user, sc, "transfer to")
	if !ok {
		return false
	}
	amount, ok := promptAmount(sc)
	if !ok {
		return false
	}

	reportResult(user.Transfer(fromIdx, toIdx, amount))
	return true
}

// chooseAccount prompts for a 1-based account number and returns the
// 0-based index, re-prompting on anything out of range.
func chooseAccount(user *bank.User, sc *bufio.Scanner, verb string) (int, bool) {
	for {
		line, ok := prompt(sc, fmt.Sprintf("Enter the account number (1-%d) to %s: ", user.AccountCount(), verb))
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > user.AccountCount() {
			fmt.Println("Invalid account. Please try again.")
			continue
		}
		return n - 1, true
	}
}

func promptAmount(sc *bufio.Scanner) (decimal.Decimal, bool) {
	for {
		line, ok := prompt(sc, "Enter amount: $")
		if !ok {
			return decimal.Zero, false
		}
		amount, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Println("Invalid amount. Please try again.")
			continue
		}
		return amount, true
	}
}

// reportResult prints domain validation failures; the session just
// continues, every domain error is recoverable.
func reportResult(err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Done.")
}

func prompt(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
