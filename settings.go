package hoverdoc

// Language is an MDN locale tag.
type Language string

// Locales MDN publishes HTML reference translations for.
const (
	LangEnUS Language = "en-US"
	LangDe   Language = "de"
	LangEs   Language = "es"
	LangFr   Language = "fr"
	LangJa   Language = "ja"
	LangKo   Language = "ko"
	LangPtBR Language = "pt-BR"
	LangRu   Language = "ru"
	LangZhCN Language = "zh-CN"
	LangZhTW Language = "zh-TW"
)

// Languages returns all supported locale tags.
func Languages() []Language {
	return []Language{
		LangEnUS, LangDe, LangEs, LangFr, LangJa,
		LangKo, LangPtBR, LangRu, LangZhCN, LangZhTW,
	}
}

// Validate returns an error if the language is not a supported locale.
func (l Language) Validate() error {
	for _, known := range Languages() {
		if l == known {
			return nil
		}
	}
	return Errorf(EINVALID, "unsupported language %q", string(l))
}

// Settings carries the host-facing configuration for documentation lookups.
type Settings struct {
	Language Language
	Enabled  bool
}

// DefaultSettings returns settings with lookups enabled in English.
func DefaultSettings() Settings {
	return Settings{Language: LangEnUS, Enabled: true}
}

// Validate returns an error if the settings contain invalid fields.
func (s *Settings) Validate() error {
	return s.Language.Validate()
}
