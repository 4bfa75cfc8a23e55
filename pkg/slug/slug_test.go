// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kahasolusi/pkg/slug"
)

/*
TestFrom covers accents, punctuation, and degenerate input.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Teknologi Informasi", "teknologi-informasi"},
		{"  E-Commerce  ", "e-commerce"},
		{"Café Déjà Vu", "cafe-deja-vu"},
		{"C++ / C#", "c-c"},
		{"Node.js", "node-js"},
		{"日本語", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}

/*
TestFrom_MaxLength caps long names.
*/
func TestFrom_MaxLength(t *testing.T) {
	got := slug.From(strings.Repeat("ab ", 200))
	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}
