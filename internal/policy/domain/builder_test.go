package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/polisure/polisure/internal/policy/domain"
)

func strPtr(v string) *string { return &v }

func TestBuildPolicyDocumentRequiresCreationFields(t *testing.T) {
	req := domain.BuildPolicyRequest{
		Title:       strPtr("Term Shield"),
		PolicyType:  strPtr("Term Life"),
		Description: strPtr("Basic term coverage"),
	}

	_, err := domain.BuildPolicyDocument(req, false)
	var missing *domain.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "category" {
		t.Fatalf("expected [category], got %v", missing.Fields)
	}
	if !strings.Contains(missing.Error(), "category") {
		t.Fatalf("error message should name the field, got %q", missing.Error())
	}
}

func TestBuildPolicyDocumentCollectsAllMissingFields(t *testing.T) {
	_, err := domain.BuildPolicyDocument(domain.BuildPolicyRequest{}, false)
	var missing *domain.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 4 {
		t.Fatalf("expected 4 missing fields, got %v", missing.Fields)
	}
}

func TestBuildPolicyDocumentUpdateSkipsRequiredValidation(t *testing.T) {
	doc, err := domain.BuildPolicyDocument(domain.BuildPolicyRequest{
		Description: strPtr("updated"),
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["description"] != "updated" {
		t.Fatalf("expected description to be set, got %v", doc)
	}
	if _, ok := doc["title"]; ok {
		t.Fatalf("absent fields must not appear in the document")
	}
}

func TestBuildPolicyDocumentCoercesNumbers(t *testing.T) {
	doc, err := domain.BuildPolicyDocument(domain.BuildPolicyRequest{
		Title:          strPtr("Term Shield"),
		Category:       strPtr("Term"),
		PolicyType:     strPtr("Term Life"),
		Description:    strPtr("Basic"),
		CoverageAmount: "250000",
		Popularity:     "abc",
	}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["coverageAmount"] != float64(250000) {
		t.Fatalf("numeric string should parse, got %v", doc["coverageAmount"])
	}
	if doc["popularity"] != float64(0) {
		t.Fatalf("unparseable number must fall back to 0, got %v", doc["popularity"])
	}
}

func TestBuildPolicyDocumentReshapesNestedObjects(t *testing.T) {
	doc, err := domain.BuildPolicyDocument(domain.BuildPolicyRequest{
		Eligibility: map[string]any{
			"minAge":              "18",
			"maxAge":              float64(65),
			"medicalExamRequired": "yes",
			"unknownField":        "dropped",
		},
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	eligibility, ok := doc["eligibility"].(domain.Eligibility)
	if !ok {
		t.Fatalf("eligibility should be fully reshaped, got %T", doc["eligibility"])
	}
	if eligibility.MinAge != 18 || eligibility.MaxAge != 65 {
		t.Fatalf("unexpected age bounds: %+v", eligibility)
	}
	if !eligibility.MedicalExamRequired {
		t.Fatalf("non-empty string is truthy")
	}
}

func TestBuildPolicyDocumentTruthiness(t *testing.T) {
	doc, err := domain.BuildPolicyDocument(domain.BuildPolicyRequest{
		Renewable:   float64(0),
		Convertible: "false",
	}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["renewable"] != false {
		t.Fatalf("0 must coerce to false")
	}
	if doc["convertible"] != true {
		t.Fatalf("non-empty string must coerce to true")
	}
}
