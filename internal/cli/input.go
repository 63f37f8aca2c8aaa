package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ispolnov/spendcli/internal/models"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads one line from reader, with
// the trailing newline trimmed. A partial line before EOF is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// getAmount prompts until it reads a positive decimal.
func getAmount(reader *bufio.Reader, w io.Writer) (float64, error) {
	s, err := GetSimpleText(reader, "Enter amount", w)
	if err != nil {
		return 0, err
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

// getCurrency prompts for a currency; empty input selects USD.
func getCurrency(reader *bufio.Reader, w io.Writer) (models.Currency, error) {
	s, err := GetSimpleText(reader, fmt.Sprintf("Enter currency %v (default USD)", models.Currencies), w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return models.CurrencyUSD, nil
	}
	c := models.Currency(strings.ToUpper(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown currency %q", s)
	}
	return c, nil
}

// getCategory prompts for one of the fixed categories, case-insensitively.
func getCategory(reader *bufio.Reader, w io.Writer) (models.Category, error) {
	s, err := GetSimpleText(reader, fmt.Sprintf("Enter category %v", models.Categories), w)
	if err != nil {
		return "", err
	}
	for _, c := range models.Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// getDate prompts for a calendar date in YYYY-MM-DD form.
func getDate(reader *bufio.Reader, w io.Writer) (models.Date, error) {
	s, err := GetSimpleText(reader, "Enter date (YYYY-MM-DD)", w)
	if err != nil {
		return models.Date{}, err
	}
	return models.ParseDate(s)
}

// getExpensePayload walks the user through one full expense form.
func getExpensePayload(reader *bufio.Reader, w io.Writer) (models.ExpensePayload, error) {
	var zero models.ExpensePayload

	amount, err := getAmount(reader, w)
	if err != nil {
		return zero, err
	}
	currency, err := getCurrency(reader, w)
	if err != nil {
		return zero, err
	}
	category, err := getCategory(reader, w)
	if err != nil {
		return zero, err
	}
	date, err := getDate(reader, w)
	if err != nil {
		return zero, err
	}
	description, err := GetSimpleText(reader, "Enter description (optional)", w)
	if err != nil {
		return zero, err
	}

	p := models.ExpensePayload{
		Amount:   amount,
		Currency: currency,
		Category: category,
		SpentAt:  date,
	}
	p.Describe(description)
	return p, nil
}
