package friendships

import "errors"

var (
	// ErrSelfFriendship возвращается при попытке подружить гостя с самим собой
	ErrSelfFriendship = errors.New("friendships.service: guest cannot befriend itself")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("friendships.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("friendships.service: internal error")
)
