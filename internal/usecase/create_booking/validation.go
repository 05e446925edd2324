package create_booking

import "strings"

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован, побеждает первая нарушенная: имя, email,
// формат email, причина. Ссылочные проверки (слот) выполняются в usecase.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}

	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}

	// Намеренно слабая проверка формата - только наличие @
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidEmailFormat
	}

	if strings.TrimSpace(req.Reason) == "" {
		return ErrReasonRequired
	}

	return nil
}
