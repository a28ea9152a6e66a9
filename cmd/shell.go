package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

const mainMenu = `1. Add Income
2. Add Expense
3. Show Transactions
4. Edit Transaction
5. Exit
`

const editMenu = `Edit Transaction Menu:
1. Edit Description
2. Edit Amount
3. Delete Transaction
4. Back to Main Menu
`

// --- Shell Command ---

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the ledger from an interactive menu" }
func (*shellCmd) Usage() string {
	return `shell

  Starts the interactive Money Manager menu. Every change is saved
  immediately. Choose Exit or close the input (Ctrl-D) to leave.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := newShell(OpenLedger(), os.Stdin, os.Stdout)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		s.clear = clearScreen
	}
	if err := s.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func clearScreen(w io.Writer) { fmt.Fprint(w, "\033[H\033[2J") }

// shell is the interactive menu. It reads one answer per line.
type shell struct {
	l     *moneytracker.Ledger
	in    *bufio.Scanner
	out   io.Writer
	clear func(io.Writer)
}

func newShell(l *moneytracker.Ledger, in io.Reader, out io.Writer) *shell {
	return &shell{l: l, in: bufio.NewScanner(in), out: out, clear: func(io.Writer) {}}
}

// run loops over the main menu until Exit or the end of the input.
func (s *shell) run() error {
	for {
		s.clear(s.out)
		fmt.Fprint(s.out, "=== Money Manager ===\n\n")
		s.showBalance()
		fmt.Fprint(s.out, mainMenu)
		line, err := s.prompt("\nChoose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			err = s.pause("\nPlease enter a valid number!\n")
		} else {
			switch choice {
			case 1:
				err = s.add(true)
			case 2:
				err = s.add(false)
			case 3:
				err = s.show()
			case 4:
				err = s.edit()
			case 5:
				return nil
			default:
				err = s.pause("\nInvalid option!\n")
			}
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readLine returns the next input line, or io.EOF at the end of the input.
func (s *shell) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *shell) prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	return s.readLine()
}

// pause prints msg and waits for Enter.
func (s *shell) pause(msg string) error {
	_, err := s.prompt(msg + "Press Enter to continue...")
	return err
}

func (s *shell) showBalance() {
	fmt.Fprint(s.out, renderer.Balance(s.l.Balance())+"\n")
}

// screen clears the screen and shows the balance, the header of every page.
func (s *shell) screen() {
	s.clear(s.out)
	s.showBalance()
}

func (s *shell) add(income bool) error {
	s.screen()
	line, err := s.prompt("Enter amount: $")
	if err != nil {
		return err
	}
	amount, err := parseAmount(strings.TrimSpace(line))
	if err != nil {
		return s.pause("\nPlease enter a valid number!\n")
	}

	kind := "expense"
	if income {
		kind = "income"
	}
	description, err := s.prompt("Enter " + kind + " description: ")
	if err != nil {
		return err
	}
	if income {
		s.l.AddIncome(description, amount)
	} else {
		s.l.AddExpense(description, amount)
	}
	return s.pause("")
}

func (s *shell) show() error {
	s.clear(s.out)
	fmt.Fprint(s.out, renderer.Ledger(s.l.Balance(), s.l.Transactions()))
	return s.pause("\n")
}

// edit loops over the edit menu until Back.
func (s *shell) edit() error {
	for {
		s.screen()
		fmt.Fprint(s.out, editMenu)
		line, err := s.prompt("\nChoose an option: ")
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			err = s.pause("Invalid input!\n\n")
		case choice == 4:
			return nil
		case choice < 1 || choice > 3:
			err = s.pause("Invalid option!\n\n")
		default:
			err = s.editTransaction(choice)
		}
		if err != nil {
			return err
		}
	}
}

// editTransaction asks for a transaction number and applies the edit choice to it.
func (s *shell) editTransaction(choice int) error {
	s.screen()
	fmt.Fprint(s.out, renderer.Transactions(s.l.Transactions()))
	if s.l.Len() == 0 {
		return s.pause("\n")
	}

	line, err := s.prompt("\nEnter transaction number: ")
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return s.pause("Invalid input!\n\n")
	}
	index := number - 1
	tx, err := s.l.Transaction(index)
	if err != nil {
		return s.pause(invalidNumber + "\n\n")
	}

	s.screen()
	fmt.Fprintf(s.out, "Selected Transaction:\n%s\n\n", tx)

	var msg string
	switch choice {
	case 1:
		description, err := s.prompt("Enter new description: ")
		if err != nil {
			return err
		}
		err = s.l.EditDescription(index, description)
		msg = outcome(err, "Description updated successfully.")
	case 2:
		line, err := s.prompt("Enter new amount: $")
		if err != nil {
			return err
		}
		amount, err := parseAmount(strings.TrimSpace(line))
		if err != nil {
			return s.pause("Invalid input!\n\n")
		}
		err = s.l.EditAmount(index, amount)
		msg = outcome(err, "Amount updated successfully.")
	case 3:
		answer, err := s.prompt("Are you sure you want to delete this transaction? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			msg = "Deletion cancelled."
			break
		}
		err = s.l.DeleteTransaction(index)
		msg = outcome(err, "Transaction deleted successfully.")
	}
	return s.pause(msg + "\n\n")
}

func outcome(err error, success string) string {
	if err != nil {
		return invalidNumber
	}
	return success
}
