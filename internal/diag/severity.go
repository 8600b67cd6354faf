package diag

// Severity отделяет лексические ошибки от замечаний, которые не мешают
// считать файл успешно разобранным. Нулевое значение не используется:
// диагностика без severity - ошибка в коде лексера.
type Severity uint8

const (
	// SevWarning пока выдаётся только для зарезервированного LEX1013.
	SevWarning Severity = iota + 1
	// SevError помечает токен как ERROR и делает результат неуспешным.
	SevError
)

// Fails reports whether the diagnostic makes the file result unsuccessful.
func (s Severity) Fails() bool {
	return s == SevError
}

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
