package translations

import "errors"

var (
	// ErrLoadCatalog ошибка чтения словаря переводов
	ErrLoadCatalog = errors.New("translations: failed to load catalog")
)
