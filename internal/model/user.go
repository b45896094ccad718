package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// Engineering is the closed set of engineering branches a user can belong to.
type Engineering string

const (
	EngineeringSystems       Engineering = "Systems"
	EngineeringElectronics   Engineering = "Electronics"
	EngineeringBiomedical    Engineering = "Biomedical"
	EngineeringIndustrial    Engineering = "Industrial"
	EngineeringEnvironmental Engineering = "Environmental"
)

// Engineerings lists every valid Engineering in a stable order.
var Engineerings = []Engineering{
	EngineeringSystems,
	EngineeringElectronics,
	EngineeringBiomedical,
	EngineeringIndustrial,
	EngineeringEnvironmental,
}

// Valid reports whether e is one of Engineerings.
func (e Engineering) Valid() bool {
	return lo.Contains(Engineerings, e)
}

const (
	MinAge = 18
	MaxAge = 65
)

// User is one synthetic person, aged MinAge to MaxAge inclusive.
type User struct {
	ID          int         `json:"id" validate:"gte=1"`
	Name        string      `json:"name" validate:"required"`
	LastName    string      `json:"lastName" validate:"required"`
	Age         int         `json:"age" validate:"gte=18,lte=65"`
	Email       string      `json:"email" validate:"required,email"`
	Engineering Engineering `json:"engineering"`
}

// Validate reports every broken invariant of u.
func (u User) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(u); err != nil {
		result = multierror.Append(result, err)
	}
	if !u.Engineering.Valid() {
		result = multierror.Append(result, fmt.Errorf("engineering %q is not one of %v", u.Engineering, Engineerings))
	}

	return result.ErrorOrNil()
}
