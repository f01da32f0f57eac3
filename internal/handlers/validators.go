package handlers

import (
	"fmt"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	validations := map[string]validator.Func{
		"docnumber":      validateDocumentNumber,
		"hhmm":           validateClockTime,
		"clientcategory": validateClientCategory,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}

// validateDocumentNumber accepts YYYY-NNN.
func validateDocumentNumber(fl validator.FieldLevel) bool {
	_, _, ok := domain.ParseDocumentNumber(fl.Field().String())
	return ok
}

// validateClockTime accepts a 24h HH:MM time.
func validateClockTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len(domain.MissionTimeLayout) {
		return false
	}
	_, err := time.Parse(domain.MissionTimeLayout, value)
	return err == nil
}

func validateClientCategory(fl validator.FieldLevel) bool {
	return domain.ClientCategory(fl.Field().String()).IsValid()
}
