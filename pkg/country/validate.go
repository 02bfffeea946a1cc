package country

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

const currencyCodeRule = "len=3,alpha"

// record is the validation view of a stored Country.
type record struct {
	Name         string  `validate:"required"`
	Population   int64   `validate:"min=0"`
	CurrencyCode *string `validate:"omitempty,len=3,alpha"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// fieldNames maps struct fields to their JSON names.
var fieldNames = map[string]string{
	"Name":         "name",
	"Population":   "population",
	"CurrencyCode": "currency_code",
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// IsCurrencyCode reports whether code is a 3-letter alphabetic currency code.
func IsCurrencyCode(code string) bool {
	return validatorInstance().Var(code, currencyCodeRule) == nil
}

// Validate checks a stored record and returns per-field messages keyed by
// JSON field name. A nil map means the record is valid.
func Validate(c *Country) map[string]string {
	err := validatorInstance().Struct(record{
		Name:         c.Name,
		Population:   c.Population,
		CurrencyCode: c.CurrencyCode,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"record": err.Error()}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name, ok := fieldNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			details[name] = "is required"
		default:
			details[name] = "is invalid"
		}
	}
	return details
}
