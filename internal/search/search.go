// Package search реализует клиентский (в терминах старой админки) поиск
// подстроки по нескольким полям записи без учета регистра.
package search

import "strings"

// Match возвращает true, если query (без учета регистра) содержится хотя бы
// в одном из полей fields. Пустой query совпадает с любой записью.
func Match(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Filter возвращает подмножество items, для которых fieldsFn выдает хотя бы
// одно поле, содержащее query. Пустой query возвращает исходный срез целиком.
func Filter[T any](items []T, query string, fieldsFn func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	var out = make([]T, 0, len(items))
	for _, item := range items {
		if Match(query, fieldsFn(item)...) {
			out = append(out, item)
		}
	}
	return out
}
