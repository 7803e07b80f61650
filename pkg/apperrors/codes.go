package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Коды ошибок, которые видит клиент процедур
const (
	// Вход процедуры не прошел декодирование или схему
	CodeInputValidation ErrorCode = "INPUT_VALIDATION"

	// Ресурсы
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Аутентификация
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"

	// Транспорт
	CodeMethodNotSupported ErrorCode = "METHOD_NOT_SUPPORTED"

	// Системные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
