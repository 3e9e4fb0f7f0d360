package validation

import (
	"fmt"
	"strings"
)

// ValidateRequired проверяет, что обязательное поле передано и не состоит из пробелов.
func ValidateRequired(fieldName string, value *string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fmt.Errorf("поле %s обязательно", fieldName)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return fmt.Errorf("некорректный формат email")
	}
	if len(local) == 0 || len(local) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domain) == 0 || len(domain) > 255 || !strings.Contains(domain, ".") {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}
	return nil
}
