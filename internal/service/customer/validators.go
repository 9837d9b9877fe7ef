package customer

import "strings"

func isValidCustomerID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// код клиента печатается на ярлыках, поэтому длина жестко ограничена
func isValidCustomerCode(code string) bool {
	if len(code) < 4 || len(code) > 10 {
		return false
	}

	for _, char := range code {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		case char >= '0' && char <= '9':
		case char == '-':
		default:
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

func isValidPassword(password string) bool {
	return len(password) >= 8
}

func isValidRole(role string) bool {
	switch role {
	case "admin", "customer":
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	switch status {
	case "active", "inactive":
		return true
	default:
		return false
	}
}

func isValidPagination(page, pageSize int) bool {
	return page >= 1 && pageSize >= 1 && pageSize <= 100
}
