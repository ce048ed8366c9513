package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCity(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Đà Nẵng", "da nang"},
		{"Hà Nội", "ha noi"},
		{"  Hồ Chí Minh  ", "ho chi minh"},
		{"NHA TRANG", "nha trang"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeCity(c.in), "input %q", c.in)
	}
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("da nang", "da nang"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))

	// Một ký tự sai trên chuỗi 7 ký tự vẫn trên ngưỡng 0.6
	assert.Greater(t, calculateSimilarity("da nang", "da nung"), 0.6)

	assert.Less(t, calculateSimilarity("da nang", "pleiku"), 0.6)
}
