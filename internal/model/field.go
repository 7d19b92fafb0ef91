package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one column of the survey table. Queries reference columns
// through Field values instead of raw strings so that an unknown name is
// caught once, at parse time.
type Field string

const (
	FieldProduct       Field = "Product"
	FieldAge           Field = "Age"
	FieldGender        Field = "Gender"
	FieldEducation     Field = "Education"
	FieldMaritalStatus Field = "MaritalStatus"
	FieldUsage         Field = "Usage"
	FieldFitness       Field = "Fitness"
	FieldIncome        Field = "Income"
	FieldMiles         Field = "Miles"
)

// Fields lists all columns in schema order.
var Fields = []Field{
	FieldProduct,
	FieldAge,
	FieldGender,
	FieldEducation,
	FieldMaritalStatus,
	FieldUsage,
	FieldFitness,
	FieldIncome,
	FieldMiles,
}

// NumericFields lists the columns usable as a metric or correlation target.
var NumericFields = []Field{
	FieldAge,
	FieldEducation,
	FieldUsage,
	FieldFitness,
	FieldIncome,
	FieldMiles,
}

func (f Field) String() string { return string(f) }

func (f Field) Numeric() bool {
	switch f {
	case FieldAge, FieldEducation, FieldUsage, FieldFitness, FieldIncome, FieldMiles:
		return true
	default:
		return false
	}
}

// InvalidFieldError reports a query referencing an unknown column, or a
// non-numeric column used where a metric is required. Non-fatal; callers may
// retry with corrected input.
type InvalidFieldError struct {
	Field string
	Want  string // "field" or "numeric field"
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Want, e.Field)
}

// ParseField resolves a column name (case-insensitive) to a Field.
func ParseField(s string) (Field, error) {
	name := strings.TrimSpace(s)
	for _, f := range Fields {
		if strings.EqualFold(name, f.String()) {
			return f, nil
		}
	}
	return "", &InvalidFieldError{Field: name, Want: "field"}
}

// ParseNumericField resolves a metric column name.
func ParseNumericField(s string) (Field, error) {
	f, err := ParseField(s)
	if err != nil {
		return "", err
	}
	if !f.Numeric() {
		return "", &InvalidFieldError{Field: f.String(), Want: "numeric field"}
	}
	return f, nil
}

// NumericValue returns the record's value for a numeric field.
func (r CustomerRecord) NumericValue(f Field) (float64, bool) {
	switch f {
	case FieldAge:
		return float64(r.Age), true
	case FieldEducation:
		return float64(r.Education), true
	case FieldUsage:
		return float64(r.Usage), true
	case FieldFitness:
		return float64(r.Fitness), true
	case FieldIncome:
		return r.Income, true
	case FieldMiles:
		return r.Miles, true
	default:
		return 0, false
	}
}

// CategoricalValue renders the record's value for any field as a category
// label. Integer columns group by their literal value, which is how the
// survey crosstabs slice Education, Usage and Fitness.
func (r CustomerRecord) CategoricalValue(f Field) (string, bool) {
	switch f {
	case FieldProduct:
		return r.Product.String(), true
	case FieldGender:
		return r.Gender.String(), true
	case FieldMaritalStatus:
		return r.MaritalStatus.String(), true
	case FieldAge:
		return strconv.Itoa(r.Age), true
	case FieldEducation:
		return strconv.Itoa(r.Education), true
	case FieldUsage:
		return strconv.Itoa(r.Usage), true
	case FieldFitness:
		return strconv.Itoa(r.Fitness), true
	case FieldIncome:
		return strconv.FormatFloat(r.Income, 'f', -1, 64), true
	case FieldMiles:
		return strconv.FormatFloat(r.Miles, 'f', -1, 64), true
	default:
		return "", false
	}
}
