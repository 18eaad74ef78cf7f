package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Eligibility struct {
	MinAge              float64 `bson:"minAge" json:"minAge"`
	MaxAge              float64 `bson:"maxAge" json:"maxAge"`
	Residency           string  `bson:"residency" json:"residency"`
	MedicalExamRequired bool    `bson:"medicalExamRequired" json:"medicalExamRequired"`
}

type Benefits struct {
	DeathBenefit         string `bson:"deathBenefit" json:"deathBenefit"`
	TaxBenefits          string `bson:"taxBenefits" json:"taxBenefits"`
	AccidentalDeathRider bool   `bson:"accidentalDeathRider" json:"accidentalDeathRider"`
	CriticalIllnessRider bool   `bson:"criticalIllnessRider" json:"criticalIllnessRider"`
	WaiverOfPremium      string `bson:"waiverOfPremium" json:"waiverOfPremium"`
}

type PremiumCalculation struct {
	BaseRatePerThousand   float64        `bson:"baseRatePerThousand" json:"baseRatePerThousand"`
	AgeFactor             map[string]any `bson:"ageFactor" json:"ageFactor"`
	SmokerSurchargePercent float64       `bson:"smokerSurchargePercent" json:"smokerSurchargePercent"`
	Formula               string         `bson:"formula" json:"formula"`
}

type Policy struct {
	ID                       primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Title                    string              `bson:"title" json:"title"`
	Category                 string              `bson:"category" json:"category"`
	PolicyType               string              `bson:"policyType" json:"policyType"`
	Description              string              `bson:"description" json:"description"`
	Image                    string              `bson:"image,omitempty" json:"image,omitempty"`
	CoverageAmount           float64             `bson:"coverageAmount,omitempty" json:"coverageAmount,omitempty"`
	TermDuration             string              `bson:"termDuration,omitempty" json:"termDuration,omitempty"`
	Popularity               float64             `bson:"popularity" json:"popularity"`
	Eligibility              *Eligibility        `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
	HealthConditionsExcluded []string            `bson:"healthConditionsExcluded,omitempty" json:"healthConditionsExcluded,omitempty"`
	Benefits                 *Benefits           `bson:"benefits,omitempty" json:"benefits,omitempty"`
	PremiumCalculation       *PremiumCalculation `bson:"premiumCalculation,omitempty" json:"premiumCalculation,omitempty"`
	PaymentOptions           []string            `bson:"paymentOptions,omitempty" json:"paymentOptions,omitempty"`
	TermLengthOptions        []string            `bson:"termLengthOptions,omitempty" json:"termLengthOptions,omitempty"`
	Renewable                bool                `bson:"renewable,omitempty" json:"renewable,omitempty"`
	Convertible              bool                `bson:"convertible,omitempty" json:"convertible,omitempty"`
	CreatedAt                time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type ListPoliciesRequest struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

type ListPoliciesResponse struct {
	Total int64    `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Data  []Policy `json:"data"`
}
