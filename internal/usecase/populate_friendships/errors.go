package populate_friendships

import "errors"

var (
	// ErrLoadSource возвращается, когда не удалось прочитать один из источников связей
	ErrLoadSource = errors.New("populate_friendships: failed to load relationship source")
)
