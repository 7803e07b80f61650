package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
	DBContextKey = contextKey("db")

	// CallerContextKey - ключ для *auth.Caller, если запрос пришел с валидным токеном
	CallerContextKey = contextKey("caller")
)
