package parcel

import "strings"

func isValidParcelID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidPagination(page, pageSize int) bool {
	return page >= 1 && pageSize >= 1 && pageSize <= 100
}
