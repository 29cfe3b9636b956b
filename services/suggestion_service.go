// services/suggestion_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMileage is returned before any suggestion work happens.
var ErrInvalidMileage = errors.New("mileage must be a positive number")

// suggestionRule maps a mileage threshold to a maintenance task. A rule
// applies once the vehicle has covered at least MinKM.
type suggestionRule struct {
	MinKM int
	Task  string
}

// Interval guidance distilled from the workshop playbook the original
// assistant prompt described: oil, filters, brakes, fluids and drivetrain
// checks at the usual two-wheeler service points.
var suggestionRules = []suggestionRule{
	{1000, "Engine oil level check and top-up"},
	{3000, "Engine oil and oil filter change"},
	{5000, "Air filter cleaning or replacement"},
	{6000, "Chain cleaning, adjustment and lubrication"},
	{8000, "Brake pad inspection and brake fluid check"},
	{10000, "Spark plug inspection or replacement"},
	{15000, "Coolant level check and radiator flush"},
	{20000, "Fork oil and suspension inspection"},
	{25000, "Clutch plate inspection"},
	{30000, "Valve clearance adjustment"},
}

// SuggestionService produces templated maintenance suggestions from the
// vehicle model and current mileage. Stateless, single request/response.
type SuggestionService struct{}

func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

// Suggest returns service tasks likely due at the given mileage. Mileage
// must be strictly positive; zero and negative values are rejected before
// any rule is evaluated.
func (s *SuggestionService) Suggest(vehicleModel string, mileage int) ([]string, error) {
	if mileage <= 0 {
		return nil, ErrInvalidMileage
	}

	model := strings.TrimSpace(vehicleModel)
	if model == "" {
		model = "your vehicle"
	}

	suggestions := []string{
		fmt.Sprintf("General inspection and wash for %s", model),
		"Tire pressure and tread depth check",
	}
	for _, rule := range suggestionRules {
		if mileage >= rule.MinKM {
			suggestions = append(suggestions, rule.Task)
		}
	}

	return suggestions, nil
}
