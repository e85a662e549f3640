package domain

import (
	"fmt"
	"regexp"
	"time"
)

var (
	platePattern = regexp.MustCompile(`^[\w\s-]{3,10}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	modelPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]{2,50}$`)
)

type Vehicle struct {
	ID          int64     `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Color       string    `json:"color"`
	OwnerID     int64     `json:"ownerId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateVehicleInput struct {
	PlateNumber string
	Brand       string
	Model       string
	Color       string
}

func (in CreateVehicleInput) Validate() error {
	if !platePattern.MatchString(in.PlateNumber) {
		return fmt.Errorf("%w: plate number must be 3-10 characters (letters, digits, spaces, hyphens)", ErrValidation)
	}
	if !namePattern.MatchString(in.Brand) {
		return fmt.Errorf("%w: brand must be 2-50 letters", ErrValidation)
	}
	if !modelPattern.MatchString(in.Model) {
		return fmt.Errorf("%w: model must be 2-50 letters or digits", ErrValidation)
	}
	if !namePattern.MatchString(in.Color) {
		return fmt.Errorf("%w: color must be 2-50 letters", ErrValidation)
	}
	return nil
}

// UpdateVehicleInput carries a partial update: nil fields are left untouched.
type UpdateVehicleInput struct {
	PlateNumber *string
	Brand       *string
	Model       *string
	Color       *string
}

func (in UpdateVehicleInput) Validate() error {
	if in.PlateNumber != nil && !platePattern.MatchString(*in.PlateNumber) {
		return fmt.Errorf("%w: plate number must be 3-10 characters (letters, digits, spaces, hyphens)", ErrValidation)
	}
	if in.Brand != nil && !namePattern.MatchString(*in.Brand) {
		return fmt.Errorf("%w: brand must be 2-50 letters", ErrValidation)
	}
	if in.Model != nil && !modelPattern.MatchString(*in.Model) {
		return fmt.Errorf("%w: model must be 2-50 letters or digits", ErrValidation)
	}
	if in.Color != nil && !namePattern.MatchString(*in.Color) {
		return fmt.Errorf("%w: color must be 2-50 letters", ErrValidation)
	}
	return nil
}

func (in UpdateVehicleInput) Empty() bool {
	return in.PlateNumber == nil && in.Brand == nil && in.Model == nil && in.Color == nil
}

// Apply copies the present fields onto v.
func (in UpdateVehicleInput) Apply(v *Vehicle) {
	if in.PlateNumber != nil {
		v.PlateNumber = *in.PlateNumber
	}
	if in.Brand != nil {
		v.Brand = *in.Brand
	}
	if in.Model != nil {
		v.Model = *in.Model
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
}
