package project

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"
)

// Variant names one of the supported presentation styles.
type Variant string

const (
	VariantIOS       Variant = "ios"
	VariantAndroid   Variant = "android"
	VariantNote      Variant = "note"
	VariantTwitter   Variant = "twitter"
	VariantGoogle    Variant = "google"
	VariantInstagram Variant = "instagram"
	VariantDiscord   Variant = "discord"
)

var variants = []Variant{
	VariantIOS,
	VariantAndroid,
	VariantNote,
	VariantTwitter,
	VariantGoogle,
	VariantInstagram,
	VariantDiscord,
}

// Variants returns the closed set of variants in display order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// ParseVariant resolves a case-insensitive variant name.
func ParseVariant(name string) (Variant, error) {
	candidate := Variant(strings.ToLower(strings.TrimSpace(name)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", apperrors.NewVariantError(name, fmt.Errorf("unknown variant; expected one of %s", joinVariants()))
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	for _, known := range variants {
		if v == known {
			return true
		}
	}
	return false
}

// MessageDriven reports whether the variant renders one unit per message.
// google and instagram build a single unit from their own settings.
func (v Variant) MessageDriven() bool {
	return v != VariantGoogle && v != VariantInstagram
}

func (v Variant) String() string {
	return string(v)
}

func joinVariants() string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
