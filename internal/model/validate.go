package model

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
