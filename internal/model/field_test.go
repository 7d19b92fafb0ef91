package model

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	cases := []struct {
		in   string
		want Field
		ok   bool
	}{
		{"Product", FieldProduct, true},
		{"product", FieldProduct, true},
		{" MaritalStatus ", FieldMaritalStatus, true},
		{"INCOME", FieldIncome, true},
		{"NotAField", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseField(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseField(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
			}
			continue
		}
		var fe *InvalidFieldError
		if !errors.As(err, &fe) {
			t.Fatalf("ParseField(%q): got %v, want InvalidFieldError", tc.in, err)
		}
	}
}

func TestParseNumericFieldRejectsCategorical(t *testing.T) {
	for _, in := range []string{"Product", "Gender", "MaritalStatus"} {
		var fe *InvalidFieldError
		if _, err := ParseNumericField(in); !errors.As(err, &fe) {
			t.Fatalf("ParseNumericField(%q): got %v, want InvalidFieldError", in, err)
		}
	}
	for _, in := range []string{"Age", "Education", "Usage", "Fitness", "Income", "Miles"} {
		if _, err := ParseNumericField(in); err != nil {
			t.Fatalf("ParseNumericField(%q): %v", in, err)
		}
	}
}

func TestRecordValues(t *testing.T) {
	r := CustomerRecord{
		Product:       ProductKP781,
		Age:           35,
		Gender:        GenderFemale,
		Education:     18,
		MaritalStatus: MaritalPartnered,
		Usage:         5,
		Fitness:       4,
		Income:        92000,
		Miles:         180,
	}

	if v, ok := r.NumericValue(FieldIncome); !ok || v != 92000 {
		t.Fatalf("NumericValue(Income) = %v, %v", v, ok)
	}
	if _, ok := r.NumericValue(FieldProduct); ok {
		t.Fatal("Product must not have a numeric value")
	}
	if v, ok := r.CategoricalValue(FieldProduct); !ok || v != "KP781" {
		t.Fatalf("CategoricalValue(Product) = %q, %v", v, ok)
	}
	if v, ok := r.CategoricalValue(FieldFitness); !ok || v != "4" {
		t.Fatalf("CategoricalValue(Fitness) = %q, %v", v, ok)
	}
}

func TestEnumParsers(t *testing.T) {
	if p, ok := ParseProduct("kp481"); !ok || p != ProductKP481 {
		t.Fatalf("ParseProduct(kp481) = %v, %v", p, ok)
	}
	if _, ok := ParseProduct("KP999"); ok {
		t.Fatal("KP999 must not parse")
	}
	if g, ok := ParseGender("F"); !ok || g != GenderFemale {
		t.Fatalf("ParseGender(F) = %v, %v", g, ok)
	}
	if m, ok := ParseMaritalStatus("partnered"); !ok || m != MaritalPartnered {
		t.Fatalf("ParseMaritalStatus = %v, %v", m, ok)
	}
}
