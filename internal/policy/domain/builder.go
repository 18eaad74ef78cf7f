package domain

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildPolicyRequest carries the raw request body for create and full-update
// paths. Pointer and any-typed fields distinguish "absent" from zero values;
// loosely typed fields are coerced during building.
type BuildPolicyRequest struct {
	Title                    *string        `json:"title"`
	Category                 *string        `json:"category"`
	PolicyType               *string        `json:"policyType"`
	Description              *string        `json:"description"`
	Image                    *string        `json:"image"`
	CoverageAmount           any            `json:"coverageAmount"`
	TermDuration             *string        `json:"termDuration"`
	Popularity               any            `json:"popularity"`
	Eligibility              map[string]any `json:"eligibility"`
	HealthConditionsExcluded []string       `json:"healthConditionsExcluded"`
	Benefits                 map[string]any `json:"benefits"`
	PremiumCalculation       map[string]any `json:"premiumCalculation"`
	PaymentOptions           []string       `json:"paymentOptions"`
	TermLengthOptions        []string       `json:"termLengthOptions"`
	Renewable                any            `json:"renewable"`
	Convertible              any            `json:"convertible"`
}

// MissingFieldsError lists the required fields absent from a creation request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return strings.Join(e.Fields, ", ") + " are required"
}

// BuildPolicyDocument normalizes a request body into the fields to persist.
// Creation requests (forUpdate=false) must carry title, category, policyType
// and description. Nested eligibility/benefits/premiumCalculation objects are
// always fully reshaped with defaults for absent sub-fields, never partially
// merged with whatever nested shape the caller sent.
func BuildPolicyDocument(req BuildPolicyRequest, forUpdate bool) (bson.M, error) {
	if !forUpdate {
		missing := []string{}
		if !present(req.Title) {
			missing = append(missing, "title")
		}
		if !present(req.Category) {
			missing = append(missing, "category")
		}
		if !present(req.PolicyType) {
			missing = append(missing, "policyType")
		}
		if !present(req.Description) {
			missing = append(missing, "description")
		}
		if len(missing) > 0 {
			return nil, &MissingFieldsError{Fields: missing}
		}
	}

	doc := bson.M{}
	if req.Title != nil {
		doc["title"] = *req.Title
	}
	if req.Category != nil {
		doc["category"] = *req.Category
	}
	if req.PolicyType != nil {
		doc["policyType"] = *req.PolicyType
	}
	if req.Description != nil {
		doc["description"] = *req.Description
	}
	if req.Image != nil {
		doc["image"] = *req.Image
	}

	if req.CoverageAmount != nil {
		doc["coverageAmount"] = coerceNumber(req.CoverageAmount)
	}
	if req.TermDuration != nil {
		doc["termDuration"] = *req.TermDuration
	}
	if req.Popularity != nil {
		doc["popularity"] = coerceNumber(req.Popularity)
	}

	if req.Eligibility != nil {
		doc["eligibility"] = Eligibility{
			MinAge:              coerceNumber(req.Eligibility["minAge"]),
			MaxAge:              coerceNumber(req.Eligibility["maxAge"]),
			Residency:           coerceString(req.Eligibility["residency"]),
			MedicalExamRequired: coerceBool(req.Eligibility["medicalExamRequired"]),
		}
	}

	if req.HealthConditionsExcluded != nil {
		doc["healthConditionsExcluded"] = req.HealthConditionsExcluded
	}

	if req.Benefits != nil {
		doc["benefits"] = Benefits{
			DeathBenefit:         coerceString(req.Benefits["deathBenefit"]),
			TaxBenefits:          coerceString(req.Benefits["taxBenefits"]),
			AccidentalDeathRider: coerceBool(req.Benefits["accidentalDeathRider"]),
			CriticalIllnessRider: coerceBool(req.Benefits["criticalIllnessRider"]),
			WaiverOfPremium:      coerceString(req.Benefits["waiverOfPremium"]),
		}
	}

	if req.PremiumCalculation != nil {
		ageFactor, _ := req.PremiumCalculation["ageFactor"].(map[string]any)
		if ageFactor == nil {
			ageFactor = map[string]any{}
		}
		doc["premiumCalculation"] = PremiumCalculation{
			BaseRatePerThousand:    coerceNumber(req.PremiumCalculation["baseRatePerThousand"]),
			AgeFactor:              ageFactor,
			SmokerSurchargePercent: coerceNumber(req.PremiumCalculation["smokerSurchargePercent"]),
			Formula:                coerceString(req.PremiumCalculation["formula"]),
		}
	}

	if req.PaymentOptions != nil {
		doc["paymentOptions"] = req.PaymentOptions
	}
	if req.TermLengthOptions != nil {
		doc["termLengthOptions"] = req.TermLengthOptions
	}

	if req.Renewable != nil {
		doc["renewable"] = coerceBool(req.Renewable)
	}
	if req.Convertible != nil {
		doc["convertible"] = coerceBool(req.Convertible)
	}

	return doc, nil
}

func present(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

// coerceNumber parses numbers and numeric strings, falling back to 0 for
// anything unparseable.
func coerceNumber(value any) float64 {
	switch cast := value.(type) {
	case float64:
		return cast
	case float32:
		return float64(cast)
	case int:
		return float64(cast)
	case int32:
		return float64(cast)
	case int64:
		return float64(cast)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(cast), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func coerceString(value any) string {
	if cast, ok := value.(string); ok {
		return cast
	}
	return ""
}

// coerceBool applies truthiness: nil, false, 0 and "" are false, everything
// else is true.
func coerceBool(value any) bool {
	switch cast := value.(type) {
	case bool:
		return cast
	case string:
		return cast != ""
	case float64:
		return cast != 0
	case int:
		return cast != 0
	case nil:
		return false
	default:
		return true
	}
}
