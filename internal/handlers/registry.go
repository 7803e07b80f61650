package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	ProcedureHandler  *ProcedureHandler
	StorefrontHandler *StorefrontHandler
	HealthHandler     *HealthHandler
}
