package models

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

var amountPrinter = message.NewPrinter(language.English)

// FormatSalary renders the job's salary range, or "" when neither bound is known.
func (j Job) FormatSalary() string {
	if j.SalaryMin == nil && j.SalaryMax == nil {
		return ""
	}

	currency := strings.ToUpper(j.SalaryCurrency)
	if currency == "" {
		currency = DefaultCurrency
	}

	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return formatAmount(*j.SalaryMin, currency) + " - " + formatAmount(*j.SalaryMax, currency)
	case j.SalaryMin != nil:
		return "From " + formatAmount(*j.SalaryMin, currency)
	default:
		return "Up to " + formatAmount(*j.SalaryMax, currency)
	}
}

func formatAmount(amount float64, currency string) string {
	digits := amountPrinter.Sprintf("%d", int64(math.Round(amount)))
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + digits
	}
	return currency + " " + digits
}
