package usecase

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
)

var validate = validator.New()

const maxNameLength = 200

// ParseAmount parses a positive money amount with at most two fractional digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domainErrors.ErrInvalidAmount
	}
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return decimal.Zero, domainErrors.ErrInvalidAmount
	}
	return amount, nil
}

// ValidatePhone accepts numbers with 10 to 15 digits in any common notation.
func ValidatePhone(phone string) bool {
	var digits int
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '(' || r == ')' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}

// ValidateEmail reports whether the address is well-formed.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidateINN checks a Russian taxpayer number: 10 digits for companies, 12 for individuals.
func ValidateINN(inn string) bool {
	if len(inn) != 10 && len(inn) != 12 {
		return false
	}
	for _, r := range inn {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type validatedOrder struct {
	amount decimal.Decimal
	total  decimal.Decimal
	method model.PaymentMethod
}

func validateOrderInput(in *OrderInput) (validatedOrder, error) {
	fields := make(map[string]string)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Name == "":
		fields["name"] = "is required"
	case len([]rune(in.Name)) > maxNameLength:
		fields["name"] = "is too long"
	}
	if !ValidateEmail(in.Email) {
		fields["email"] = "must be a valid email address"
	}
	if !ValidatePhone(in.Phone) {
		fields["phone"] = "must be a valid phone number"
	}
	if !in.ProjectType.Valid() {
		fields["projectType"] = "must be one of landing, corporate, shop"
	}

	var result validatedOrder
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		fields["amount"] = "must be a positive amount with at most two decimals"
	} else {
		result.amount = amount
		result.total = amount.Mul(decimal.NewFromInt(2))
		if strings.TrimSpace(in.TotalAmount) != "" {
			total, err := ParseAmount(in.TotalAmount)
			if err != nil || !total.Equal(result.total) {
				fields["totalAmount"] = "must be twice the prepayment amount"
			}
		}
	}

	result.method = in.PaymentMethod
	if result.method == "" {
		result.method = model.PaymentMethodCard
	}
	switch {
	case !result.method.Valid():
		fields["paymentMethod"] = "must be card or invoice"
	case result.method == model.PaymentMethodInvoice:
		in.Company.Name = strings.TrimSpace(in.Company.Name)
		in.Company.INN = strings.TrimSpace(in.Company.INN)
		if in.Company.Name == "" {
			fields["companyName"] = "is required for invoice payment"
		}
		if !ValidateINN(in.Company.INN) {
			fields["inn"] = "must contain 10 or 12 digits"
		}
	}

	return result, domainErrors.NewValidationError(fields)
}
