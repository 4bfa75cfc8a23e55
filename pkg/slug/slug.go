// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Categories, technologies and clients are addressable by slug
// (e.g., "Teknologi Informasi" -> "teknologi-informasi").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength caps generated slugs to the width of the slug columns.
const MaxLength = 255

var (
	// nonAlphanumeric matches any sequence of characters outside [a-z0-9-].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and drops combining marks (é -> e).
// 2. Converts to lowercase.
// 3. Replaces everything outside [a-z0-9] with hyphens.
// 4. Collapses repeated hyphens, trims them at both ends, caps the length.
//
// The result is empty when the input has no ASCII letters or digits.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace anything non-ASCII-alphanumeric
	result = nonAlphanumeric.ReplaceAllString(result, "-")

	// 4. Clean up hyphenation
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if len(result) > MaxLength {
		result = strings.TrimRight(result[:MaxLength], "-")
	}

	return result
}
