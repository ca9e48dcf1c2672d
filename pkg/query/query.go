// Package query filters and sorts expense lists.
package query

import (
	"errors"
	"strings"

	"github.com/envelope-zero/expense-tracker/internal/types"
	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrSortFieldInvalid = errors.New("the sort field must be one of date, amount or category")
	ErrSortOrderInvalid = errors.New("the sort order must be asc or desc")
)

// Field is a field expenses can be sorted by.
type Field string

const (
	FieldDate     Field = "date"
	FieldAmount   Field = "amount"
	FieldCategory Field = "category"
)

// Order is the sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Filter selects the expenses to show.
type Filter struct {
	Category string     // Exact category, empty or models.CategoryAll match every category
	Search   string     // Case-insensitive text matched against description, category and amount
	From     types.Date // First day of the range, inclusive
	Until    types.Date // Last day of the range, inclusive
}

// Sort defines the order of the result.
type Sort struct {
	Field Field
	Order Order
}

// DefaultSort lists the newest expenses first.
var DefaultSort = Sort{Field: FieldDate, Order: OrderDesc}

// Validate checks field and order. Empty values are replaced with the defaults.
func (s Sort) Validate() (Sort, error) {
	if s.Field == "" {
		s.Field = DefaultSort.Field
	}

	if s.Order == "" {
		s.Order = DefaultSort.Order
	}

	if !slices.Contains([]Field{FieldDate, FieldAmount, FieldCategory}, s.Field) {
		return s, ErrSortFieldInvalid
	}

	if s.Order != OrderAsc && s.Order != OrderDesc {
		return s, ErrSortOrderInvalid
	}

	return s, nil
}

// Apply returns the expenses that match the filter in the requested
// order together with the sum of their amounts.
//
// The input is not modified. Sorting is stable, expenses with equal
// keys keep their relative order.
func Apply(expenses []models.Expense, filter Filter, sort Sort) ([]models.Expense, decimal.Decimal) {
	result := make([]models.Expense, 0, len(expenses))
	total := decimal.Zero

	match := matcher(filter)
	for _, e := range expenses {
		if !match(e) {
			continue
		}

		result = append(result, e)
		total = total.Add(e.Amount)
	}

	slices.SortStableFunc(result, comparator(sort))
	return result, total
}

// matcher combines all active filters.
func matcher(filter Filter) func(models.Expense) bool {
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(filter.Search))

	// The range is only active when both bounds are set
	useRange := !filter.From.IsZero() && !filter.Until.IsZero()

	return func(e models.Expense) bool {
		if filter.Category != "" && filter.Category != models.CategoryAll && e.Category != filter.Category {
			return false
		}

		if search != "" &&
			!strings.Contains(fold.String(e.Description), search) &&
			!strings.Contains(fold.String(e.Category), search) &&
			!strings.Contains(e.Amount.String(), search) {
			return false
		}

		if useRange && (e.Date.Before(filter.From) || e.Date.After(filter.Until)) {
			return false
		}

		return true
	}
}

func comparator(sort Sort) func(a, b models.Expense) int {
	var cmp func(a, b models.Expense) int

	switch sort.Field {
	case FieldAmount:
		cmp = func(a, b models.Expense) int {
			return a.Amount.Cmp(b.Amount)
		}
	case FieldCategory:
		collator := collate.New(language.English)
		cmp = func(a, b models.Expense) int {
			return collator.CompareString(a.Category, b.Category)
		}
	default:
		cmp = func(a, b models.Expense) int {
			return a.Date.Compare(b.Date)
		}
	}

	if sort.Order == OrderAsc {
		return cmp
	}

	return func(a, b models.Expense) int {
		return cmp(b, a)
	}
}
