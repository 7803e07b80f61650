package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	ProductService ProductService
	ReviewService  ReviewService
}
