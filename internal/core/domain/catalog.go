package domain

import "errors"

// CategoryType distinguishes the two directory branches.
type CategoryType string

const (
	CategoryProfessional  CategoryType = "professional"
	CategoryEstablishment CategoryType = "establishment"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrInvalidTier      = errors.New("invalid plan tier")
)

// Category groups professionals or establishments in the directory.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// Plan tiers, highest first. Tier membership drives the plan filter in search.
const (
	TierPremium = "premium"
	TierGold    = "gold"
	TierSilver  = "silver"
)

// ValidTier reports whether tier names a known plan tier.
func ValidTier(tier string) bool {
	switch tier {
	case TierPremium, TierGold, TierSilver:
		return true
	}
	return false
}

// Plan is a subscription tier a professional can hold.
type Plan struct {
	ID     string  `json:"id"`
	Tier   string  `json:"tier"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}
