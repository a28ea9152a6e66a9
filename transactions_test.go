package moneytracker

import "testing"

func TestTransactionString(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		want string
	}{
		{"income", NewIncome("Paycheck", D("42.5")), "+$42.50 - Paycheck"},
		{"expense", NewExpense("Coffee", D("12")), "-$12.00 - Coffee"},
		{"empty description", NewExpense("", D("3.1")), "-$3.10 - "},
		{"no thousands separator", NewIncome("Bonus", D("1234567.891")), "+$1234567.89 - Bonus"},
		{"rounds half up", NewIncome("Tip", D("0.125")), "+$0.13 - Tip"},
		{"zero", NewIncome("Nothing", D("0")), "+$0.00 - Nothing"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tx.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTransactionAccessors(t *testing.T) {
	tx := NewTransaction("Rent", D("400"), false)
	if tx.Description() != "Rent" || !tx.Amount().Equal(D("400")) || tx.IsIncome() {
		t.Fatalf("unexpected transaction fields: %q %s %v", tx.Description(), tx.Amount(), tx.IsIncome())
	}
	if got := tx.Signed(); !got.Equal(D("-400")) {
		t.Errorf("Signed() = %s, want -400", got)
	}
	if got := tx.What(); got != CmdExpense {
		t.Errorf("What() = %q, want %q", got, CmdExpense)
	}

	edited := tx.withAmount(D("450"))
	if !tx.Amount().Equal(D("400")) {
		t.Errorf("withAmount modified the original transaction")
	}
	if !edited.Equal(NewExpense("Rent", D("450"))) {
		t.Errorf("withAmount() = %v, want -$450.00 - Rent", edited)
	}
	if tx.Equal(NewIncome("Rent", D("400"))) {
		t.Errorf("an income and an expense must not be equal")
	}
}

func TestTransactionInvalidUTF8(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"café", "café"},
		{"caf\xe9", "caf\uFFFD"},
		{"\xff\xfe", "\uFFFD\uFFFD"},
	}
	for _, tc := range testCases {
		if got := NewIncome(tc.in, D("1")).Description(); got != tc.want {
			t.Errorf("NewIncome(%q).Description() = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := NewIncome("ok", D("1")).withDescription("a\x80b").Description(); got != "a\uFFFDb" {
		t.Errorf("withDescription() kept invalid UTF-8: %q", got)
	}
}

func TestBalanceString(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"600", "$600.00"},
		{"-450", "$-450.00"},
		{"-0.001", "$0.00"},
		{"1000.005", "$1000.01"},
	}
	for _, tc := range testCases {
		if got := BalanceString(D(tc.in)); got != tc.want {
			t.Errorf("BalanceString(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	for _, in := range []string{"42.50", "$42.50", "42.5"} {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", in, err)
		}
		if !got.Equal(D("42.5")) {
			t.Errorf("ParseAmount(%q) = %s, want 42.5", in, got)
		}
	}
	for _, in := range []string{"", "abc", "$", "4,2"} {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) expected an error", in)
		}
	}
}
