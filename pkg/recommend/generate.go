package recommend

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_catalog.go github.com/kasuboski/mediarec/pkg/recommend Catalog
