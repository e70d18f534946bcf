package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAttribute is an error when a card attribute is outside of {0, 1, 2}
var ErrInvalidAttribute = errors.New("invalid card attribute")

// ErrInvalidCardString is an error when a card cannot be parsed from its display form
var ErrInvalidCardString = errors.New("invalid card string")

// Attribute labels, indexed by their integer code
var (
	Numbers  = [3]string{"one", "two", "three"}
	Colors   = [3]string{"red", "green", "purple"}
	Shadings = [3]string{"solid", "empty", "striped"}
	Shapes   = [3]string{"diamond", "squiggle", "oval"}
)

// attribute positions within Card.values
const (
	number = iota
	color
	shading
	shape

	numAttributes
)

// values per attribute
const numValues = 3

// NumberOfUniqueCards is the number of distinct cards (3^4)
const NumberOfUniqueCards = numValues * numValues * numValues * numValues

// InvalidAttributeError reports which attribute was out of range
type InvalidAttributeError struct {
	Attribute string
	Value     int
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("%s: %s must be 0, 1 or 2, got %d", ErrInvalidAttribute, e.Attribute, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidAttribute)
func (e *InvalidAttributeError) Unwrap() error {
	return ErrInvalidAttribute
}

// Card is an individual Set card
// Cards are immutable and are compared by pointer when removed from a board
type Card struct {
	values [numAttributes]int
}

// NewCard returns a new card
func NewCard(number, color, shading, shape int) (*Card, error) {
	c := &Card{values: [numAttributes]int{number, color, shading, shape}}
	for i, v := range c.values {
		if v < 0 || v >= numValues {
			return nil, &InvalidAttributeError{Attribute: attributeNames[i], Value: v}
		}
	}

	return c, nil
}

// MustCard is like NewCard, but panics on an invalid attribute
func MustCard(number, color, shading, shape int) *Card {
	c, err := NewCard(number, color, shading, shape)
	if err != nil {
		panic(err)
	}

	return c
}

var attributeNames = [numAttributes]string{"number", "color", "shading", "shape"}

// CardFromCode decodes a card code using its base-3 digits
// The most significant digit is the number, followed by color, shading and shape.
// Codes outside of [0, NumberOfUniqueCards) wrap around.
func CardFromCode(code int) *Card {
	code %= NumberOfUniqueCards
	if code < 0 {
		code += NumberOfUniqueCards
	}

	c := &Card{}
	for i := numAttributes - 1; i >= 0; i-- {
		c.values[i] = code % numValues
		code /= numValues
	}

	return c
}

// Code returns the card code, the inverse of CardFromCode
func (c *Card) Code() int {
	code := 0
	for _, v := range c.values {
		code = code*numValues + v
	}

	return code
}

// Number returns the number attribute
func (c *Card) Number() int {
	return c.values[number]
}

// Color returns the color attribute
func (c *Card) Color() int {
	return c.values[color]
}

// Shading returns the shading attribute
func (c *Card) Shading() int {
	return c.values[shading]
}

// Shape returns the shape attribute
func (c *Card) Shape() int {
	return c.values[shape]
}

// String renders the card, e.g. "two red solid squiggles"
func (c *Card) String() string {
	suffix := ""
	if c.values[number] > 0 {
		suffix = "s"
	}

	return fmt.Sprintf("%s %s %s %s%s",
		Numbers[c.values[number]],
		Colors[c.values[color]],
		Shadings[c.values[shading]],
		Shapes[c.values[shape]],
		suffix,
	)
}

// MarshalText implements encoding.TextMarshaler so cards serialize as their display form
func (c *Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CardFromString parses the display form of a card
// Parsing is case-insensitive, and the shape may be singular or plural.
func CardFromString(s string) (*Card, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != numAttributes {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCardString, s)
	}

	fields[shape] = strings.TrimSuffix(fields[shape], "s")

	var values [numAttributes]int
	for i, labels := range [numAttributes][3]string{Numbers, Colors, Shadings, Shapes} {
		v := indexOf(labels, fields[i])
		if v < 0 {
			return nil, fmt.Errorf("%w: unknown %s %q", ErrInvalidCardString, attributeNames[i], fields[i])
		}

		values[i] = v
	}

	return &Card{values: values}, nil
}

func indexOf(labels [3]string, s string) int {
	for i, label := range labels {
		if label == s {
			return i
		}
	}

	return -1
}

// CardsToString joins the display form of each card with ", "
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ", ")
}
