package service

import "errors"

var (
	// ErrLoginTaken — логин уже занят.
	ErrLoginTaken = errors.New("login already taken")
	// ErrInvalidCredentials — неверный логин или пароль.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrMemoryNotFound — воспоминание не найдено или принадлежит другому пользователю.
	ErrMemoryNotFound = errors.New("memory not found")
	// ErrCategoryNotFound — категория не найдена или принадлежит другому пользователю.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrFileTooLarge — загружаемый файл превышает лимит.
	ErrFileTooLarge = errors.New("file too large")
)
