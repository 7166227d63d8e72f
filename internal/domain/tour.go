package domain

// Localized значение поля на нескольких языках: язык -> текст
type Localized map[string]string

// Resolve возвращает текст на языке lang, иначе на fallback, иначе false
func (l Localized) Resolve(lang, fallback string) (string, bool) {
	if v, ok := l[lang]; ok && v != "" {
		return v, true
	}
	if v, ok := l[fallback]; ok && v != "" {
		return v, true
	}
	return "", false
}

// Tour тур, к которому относятся расписания
type Tour struct {
	ID    int64
	Name  string    // название на языке по умолчанию
	Names Localized // переводы названия
}

// DisplayName название тура на языке lang с откатом на язык по умолчанию
func (t *Tour) DisplayName(lang string) string {
	if name, ok := t.Names.Resolve(lang, DefaultLanguage); ok {
		return name
	}
	return t.Name
}
