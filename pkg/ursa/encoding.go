/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ursa

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"
)

const (
	// encodingSentinel prefixes every encoded attribute so it can't be confused with a raw numeric literal.
	encodingSentinel = "1"
	unitWidth        = 3
	maxCodeUnit      = 999
)

var (
	ErrUnrepresentable   = errors.New("attribute value contains a character outside the encodable range")
	ErrMalformedEncoding = errors.New("malformed encoded attribute value")
)

// Encode converts a textual attribute value into the numeric string presented to the proof system.
// Each UTF-16 code unit becomes a zero padded 3 digit group after a leading "1".
func Encode(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	units := utf16.Encode([]rune(value))

	var sb strings.Builder
	sb.Grow(len(encodingSentinel) + len(units)*unitWidth)
	sb.WriteString(encodingSentinel)

	for i, u := range units {
		if u > maxCodeUnit {
			return "", errors.Wrapf(ErrUnrepresentable, "code unit %d at position %d", u, i)
		}

		sb.WriteString(padUnit(u))
	}

	return sb.String(), nil
}

// Decode reverses Encode.
func Decode(number string) (string, error) {
	if number == "" {
		return number, nil
	}

	if !strings.HasPrefix(number, encodingSentinel) {
		return "", errors.Wrap(ErrMalformedEncoding, "missing sentinel digit")
	}

	digits := number[len(encodingSentinel):]
	if len(digits)%unitWidth != 0 {
		return "", errors.Wrapf(ErrMalformedEncoding, "%d digits is not a multiple of %d", len(digits), unitWidth)
	}

	units := make([]uint16, 0, len(digits)/unitWidth)
	for i := 0; i < len(digits); i += unitWidth {
		group := digits[i : i+unitWidth]
		u, err := strconv.ParseUint(group, 10, 16)
		if err != nil {
			return "", errors.Wrapf(ErrMalformedEncoding, "invalid group %q", group)
		}

		units = append(units, uint16(u))
	}

	return string(utf16.Decode(units)), nil
}

func padUnit(u uint16) string {
	s := strconv.Itoa(int(u))
	for len(s) < unitWidth {
		s = "0" + s
	}

	return s
}
