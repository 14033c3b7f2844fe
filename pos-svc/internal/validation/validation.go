package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
	"github.com/cahuala/ordersApi/pos-svc/internal/pagination"
)

const (
	msgRequired  = "Campo obrigatório"
	msgPriceCent = "Valor deve ter no máximo 2 casas decimais"
	msgPriceMax  = "Valor deve ser menor que 100000000"
	msgIntMax    = "Valor excede o máximo permitido"
)

// Money columns are NUMERIC(10,2) and counters are INT.
var (
	maxAmount = decimal.New(1, 8)
	maxInt    = math.MaxInt32
)

// checker collects every failing field so the client gets the whole list at once.
type checker struct {
	issues []domain.FieldError
}

func (c *checker) fail(field, message string) {
	c.issues = append(c.issues, domain.FieldError{Field: field, Message: message})
}

func (c *checker) err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &domain.ValidationError{Issues: c.issues}
}

func (c *checker) requiredString(field string, value *string) string {
	if value == nil {
		c.fail(field, msgRequired)
		return ""
	}
	return *value
}

func (c *checker) nonBlank(field string, value *string) string {
	s := strings.TrimSpace(c.requiredString(field, value))
	if value != nil && s == "" {
		c.fail(field, msgRequired)
	}
	return s
}

func (c *checker) optionalNonBlank(field string, value *string) *string {
	if value == nil {
		return nil
	}
	s := c.nonBlank(field, value)
	return &s
}

// minLength trims before measuring and returns the trimmed value.
func (c *checker) minLength(field string, value *string, min int, message string) string {
	if value == nil {
		c.fail(field, message)
		return ""
	}
	s := strings.TrimSpace(*value)
	if utf8.RuneCountInString(s) < min {
		c.fail(field, message)
	}
	return s
}

func (c *checker) optionalMinLength(field string, value *string, min int, message string) *string {
	if value == nil {
		return nil
	}
	s := c.minLength(field, value, min, message)
	return &s
}

func (c *checker) positiveDecimal(field string, value *decimal.Decimal, message string) decimal.Decimal {
	if value == nil || !value.IsPositive() {
		c.fail(field, message)
		return decimal.Zero
	}
	c.amount(field, *value)
	return *value
}

// amount rejects values the money columns would round or overflow.
func (c *checker) amount(field string, value decimal.Decimal) {
	switch {
	case !value.Equal(value.Round(2)):
		c.fail(field, msgPriceCent)
	case value.GreaterThanOrEqual(maxAmount):
		c.fail(field, msgPriceMax)
	}
}

func (c *checker) optionalPositiveDecimal(field string, value *decimal.Decimal, message string) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := c.positiveDecimal(field, value, message)
	return &d
}

func (c *checker) positiveInt(field string, value *int, message string) int {
	if value == nil || *value <= 0 {
		c.fail(field, message)
		return 0
	}
	if *value > maxInt {
		c.fail(field, msgIntMax)
		return 0
	}
	return *value
}

func (c *checker) optionalPositiveInt(field string, value *int, message string) *int {
	if value == nil {
		return nil
	}
	n := c.positiveInt(field, value, message)
	return &n
}

func (c *checker) id(field string, value *string, message string) uuid.UUID {
	if value == nil {
		c.fail(field, message)
		return uuid.Nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*value))
	if err != nil {
		c.fail(field, message)
		return uuid.Nil
	}
	return id
}

func (c *checker) optionalID(field string, value *string, message string) *uuid.UUID {
	if value == nil {
		return nil
	}
	id := c.id(field, value, message)
	return &id
}

func (c *checker) idList(field string, values []string, message string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for i, raw := range values {
		raw := raw
		ids = append(ids, c.id(field+"["+strconv.Itoa(i)+"]", &raw, message))
	}
	return ids
}

// ID parses a path identifier.
func ID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "Identificador deve ser um UUID válido")
	}
	return id, nil
}

// ListQuery is the raw query string of a list endpoint.
type ListQuery struct {
	Q       string
	Legacy  string
	Page    string
	PerPage string
}

// List validates paging and returns the trimmed filter text. The canonical
// q parameter wins over the legacy per-resource name.
func List(query ListQuery) (domain.TextFilter, pagination.Params, error) {
	c := &checker{}
	params := pagination.Params{
		Page:    c.queryInt("page", query.Page, pagination.DefaultPage),
		PerPage: c.queryInt("perPage", query.PerPage, pagination.DefaultPerPage),
	}
	if err := c.err(); err != nil {
		return domain.TextFilter{}, pagination.Params{}, err
	}

	text := query.Q
	if strings.TrimSpace(text) == "" {
		text = query.Legacy
	}
	return domain.TextFilter{Contains: strings.TrimSpace(text)}, params.Normalize(), nil
}

func (c *checker) queryInt(field, raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.fail(field, "Deve ser um número inteiro maior ou igual a 1")
		return fallback
	}
	return n
}
