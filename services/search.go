package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// CitySearch resolve chuỗi thành phố người dùng gõ (sai chính tả, thiếu
// dấu) về tên thành phố chuẩn trong bảng hotels, để bộ lọc availability
// vẫn khớp được dữ liệu.
type CitySearch struct {
	db *gorm.DB
}

// NewCitySearch tạo instance mới của CitySearch
func NewCitySearch(db *gorm.DB) *CitySearch {
	return &CitySearch{db: db}
}

// NormalizeCity chuẩn hóa chuỗi: bỏ dấu, lowercase, trim
func NormalizeCity(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tính độ tương đồng giữa hai chuỗi, 1.0 là trùng khớp hoàn toàn
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// ResolveCity trả về tên thành phố chuẩn cho query; chuỗi rỗng nếu không
// có thành phố nào đủ gần.
func (s *CitySearch) ResolveCity(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", nil
	}

	var cities []string
	if err := s.db.WithContext(ctx).Table("hotels").
		Distinct("city").Where("city <> ''").
		Pluck("city", &cities).Error; err != nil {
		return "", err
	}
	if len(cities) == 0 {
		return "", nil
	}

	normalized := NormalizeCity(query)

	// Map tên đã chuẩn hóa về tên gốc trong DB
	byNormalized := make(map[string]string, len(cities))
	keys := make([]string, 0, len(cities))
	for _, city := range cities {
		key := NormalizeCity(city)
		if _, seen := byNormalized[key]; !seen {
			byNormalized[key] = city
			keys = append(keys, key)
		}
	}

	if original, ok := byNormalized[normalized]; ok {
		return original, nil
	}

	cm := closestmatch.New(keys, []int{2, 3})
	best := cm.Closest(normalized)
	if best == "" {
		return "", nil
	}
	if calculateSimilarity(normalized, best) < 0.6 {
		return "", nil
	}
	return byNormalized[best], nil
}
