package dtos

import (
	"encoding/json"
	"errors"
	"time"
)

type Brand string

const (
	BrandEmbraer Brand = "EMBRAER"
	BrandBoeing  Brand = "BOEING"
	BrandAirbus  Brand = "AIRBUS"
)

// ErrInvalidBrand is returned while decoding a brand outside the closed set
var ErrInvalidBrand = errors.New("invalid brand")

// Brands lists the accepted brands in declaration order
func Brands() []Brand {
	return []Brand{BrandEmbraer, BrandBoeing, BrandAirbus}
}

// ParseBrand matches s exactly against the known brands
func ParseBrand(s string) (Brand, error) {
	for _, b := range Brands() {
		if string(b) == s {
			return b, nil
		}
	}
	return "", ErrInvalidBrand
}

func (b Brand) String() string {
	return string(b)
}

// UnmarshalJSON rejects anything but an exact brand name, blank strings
// included. null decodes to the zero Brand so the required rule reports it.
func (b *Brand) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidBrand
	}
	parsed, err := ParseBrand(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Aircraft is the wire representation of an aircraft record
type Aircraft struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"notblank"`
	Brand       Brand     `json:"brand" validate:"required"`
	Year        *int      `json:"year" validate:"required"`
	Description string    `json:"description" validate:"notblank"`
	Sold        bool      `json:"sold"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}
