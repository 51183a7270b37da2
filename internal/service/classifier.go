package service

import "typewise_alert/internal/models"

// Classify places value relative to the inclusive range [lowerLimit, upperLimit].
func Classify(value, lowerLimit, upperLimit float64) models.BreachType {
	if value < lowerLimit {
		return models.TooLow
	}
	if value > upperLimit {
		return models.TooHigh
	}
	return models.Normal
}

// ClassifyBreach looks up the range for coolingType and classifies temperatureC.
func ClassifyBreach(coolingType models.CoolingType, temperatureC float64) (models.BreachType, error) {
	limits, err := GetLimits(coolingType)
	if err != nil {
		return models.Normal, err
	}
	return Classify(temperatureC, limits.LowerLimit, limits.UpperLimit), nil
}

type ClassifierService struct{}

func NewClassifierService() *ClassifierService { return &ClassifierService{} }

func (s *ClassifierService) ClassifyBreach(coolingType models.CoolingType, temperatureC float64) (models.BreachType, error) {
	return ClassifyBreach(coolingType, temperatureC)
}
