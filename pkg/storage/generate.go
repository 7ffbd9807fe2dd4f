package storage

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/mediarec/pkg/storage Storage
