package translations

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/tourism-booking-service/internal/domain"
)

// Catalog неизменяемый словарь переводов: язык -> ключ -> текст
// Загружается один раз при старте и безопасен для конкурентного чтения
type Catalog struct {
	defaultLang string
	texts       map[string]map[string]string
}

// NewCatalog создает словарь из готовых данных (данные копируются)
func NewCatalog(defaultLang string, texts map[string]map[string]string) *Catalog {
	if defaultLang == "" {
		defaultLang = domain.DefaultLanguage
	}

	copied := make(map[string]map[string]string, len(texts))
	for lang, entries := range texts {
		inner := make(map[string]string, len(entries))
		for key, value := range entries {
			inner[key] = value
		}
		copied[lang] = inner
	}

	return &Catalog{defaultLang: defaultLang, texts: copied}
}

// Load читает словарь из TOML файла, где таблицы верхнего уровня это коды языков
func Load(path, defaultLang string) (*Catalog, error) {
	var texts map[string]map[string]string
	if _, err := toml.DecodeFile(path, &texts); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalog, path, err)
	}
	return NewCatalog(defaultLang, texts), nil
}

// DefaultLanguage язык, на который откатывается поиск
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Text возвращает перевод: запрошенный язык -> язык по умолчанию -> сам ключ
func (c *Catalog) Text(key, lang string) string {
	if value, ok := c.lookup(key, lang); ok {
		return value
	}
	if value, ok := c.lookup(key, c.defaultLang); ok {
		return value
	}
	return key
}

// Textf переводит шаблон и подставляет аргументы
func (c *Catalog) Textf(key, lang string, args ...interface{}) string {
	return fmt.Sprintf(c.Text(key, lang), args...)
}

// Localize выбирает значение поля из переводов с тем же порядком отката
func (c *Catalog) Localize(values domain.Localized, lang, fallback string) string {
	if value, ok := values.Resolve(lang, c.defaultLang); ok {
		return value
	}
	return fallback
}

// Languages список языков словаря
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.texts))
	for lang := range c.texts {
		langs = append(langs, lang)
	}
	return langs
}

func (c *Catalog) lookup(key, lang string) (string, bool) {
	entries, ok := c.texts[lang]
	if !ok {
		return "", false
	}
	value, ok := entries[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
