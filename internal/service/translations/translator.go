package translations

// Translator таблица переводов одного языка.
// Отсутствующий ключ возвращается как есть.
type Translator struct {
	language string
	table    map[string]string
}

// NewTranslator создает переводчик поверх таблицы
func NewTranslator(language string, table map[string]string) *Translator {
	if table == nil {
		table = map[string]string{}
	}
	return &Translator{language: language, table: table}
}

// T возвращает перевод ключа или сам ключ
func (t *Translator) T(key string) string {
	if v, ok := t.table[key]; ok && v != "" {
		return v
	}
	return key
}

// Language язык таблицы
func (t *Translator) Language() string { return t.language }

// Table возвращает копию таблицы
func (t *Translator) Table() map[string]string {
	out := make(map[string]string, len(t.table))
	for k, v := range t.table {
		out[k] = v
	}
	return out
}
