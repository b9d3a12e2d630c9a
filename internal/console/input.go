package console

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// readLine prompts and returns the next input line, or io.EOF once input
// is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		c.printf("\n")
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// promptText re-prompts until a non-blank answer is given.
func (c *Console) promptText(prompt string) (string, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		c.printf("Error: Input cannot be empty\n")
	}
}

// promptInt re-prompts until an integer no smaller than floor is given.
func (c *Console) promptInt(prompt string, floor int) (int, error) {
	for {
		line, err := c.promptText(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Error: Please enter a valid number\n")
			continue
		}
		if n < floor {
			c.printf("Error: Value must be greater than %d\n", floor)
			continue
		}
		return n, nil
	}
}

// promptDecimal re-prompts until a number no smaller than floor is given. Zero
// is accepted only when allowZero is set.
func (c *Console) promptDecimal(prompt string, floor decimal.Decimal, allowZero bool) (decimal.Decimal, error) {
	for {
		line, err := c.promptText(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(line)
		if err != nil {
			c.printf("Error: Please enter a valid number\n")
			continue
		}
		if d.LessThan(floor) {
			c.printf("Error: Value must be greater than %s\n", floor.String())
			continue
		}
		if d.IsZero() && !allowZero {
			c.printf("Error: Value cannot be zero\n")
			continue
		}
		return d, nil
	}
}
