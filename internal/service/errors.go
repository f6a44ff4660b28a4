package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"vendorflow/internal/models"
)

var ErrNotFound = errors.New("not found")

var (
	ErrDecode      = errors.New("decode")
	ErrValidation  = errors.New("validation")
	ErrPersistence = errors.New("persistence")
	ErrDelivery    = errors.New("delivery")
	ErrConflict    = errors.New("conflict")
)

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func (s *Service) validate(req any) error {
	if err := s.v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// storeErr classifies a store error: misses become ErrNotFound, failed
// conditional writes ErrConflict, anything else ErrPersistence with the
// driver text kept.
func storeErr(op string, err error) error {
	if errors.Is(err, models.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if errors.Is(err, models.ErrConflict) {
		return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

func isMiss(err error) bool {
	return errors.Is(err, models.ErrRecordNotFound)
}
