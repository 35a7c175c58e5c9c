package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyFile            = "file"
	KeyQuit            = "quit"
	KeySettings        = "settings"
	KeyOpen            = "open"
	KeyTheme           = "theme"
	KeyRepo            = "repo"
	KeyClose           = "close"
	KeyResetStorage    = "reset_storage"
	KeyResetErrors     = "reset_errors"
	KeyShowErrorPanel  = "show_error_panel"
	KeyShowDebugPanel  = "show_debug_panel"
	KeyShowSidebar     = "show_sidebar"
	KeyAbout           = "about"
	KeyVersion         = "version"
	KeyRepository      = "repository"
	KeyInspection      = "inspection"
	KeyStorageSaved    = "storage_saved"
	KeyNoErrors        = "no_errors"
	KeyGeneralSettings = "general_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyFile:            "File",
		KeyQuit:            "Quit",
		KeySettings:        "Settings",
		KeyOpen:            "Open",
		KeyTheme:           "Theme",
		KeyRepo:            "Repo",
		KeyClose:           "Close",
		KeyResetStorage:    "Reset storage of %s",
		KeyResetErrors:     "Reset %s",
		KeyShowErrorPanel:  "Show Error panel",
		KeyShowDebugPanel:  "Show Debug panel",
		KeyShowSidebar:     "Show side region",
		KeyAbout:           "About",
		KeyVersion:         "Version: %s",
		KeyRepository:      "%s repository",
		KeyInspection:      "Inspection",
		KeyStorageSaved:    "Storage saved",
		KeyNoErrors:        "No errors",
		KeyGeneralSettings: "%s settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyFile:            "Файл",
		KeyQuit:            "Выход",
		KeySettings:        "Настройки",
		KeyOpen:            "Открыть",
		KeyTheme:           "Тема",
		KeyRepo:            "Репозиторий",
		KeyClose:           "Закрыть",
		KeyResetStorage:    "Сбросить хранилище %s",
		KeyResetErrors:     "Сбросить %s",
		KeyShowErrorPanel:  "Показать панель ошибок",
		KeyShowDebugPanel:  "Показать панель отладки",
		KeyShowSidebar:     "Показать боковую панель",
		KeyAbout:           "О программе",
		KeyVersion:         "Версия: %s",
		KeyRepository:      "Репозиторий %s",
		KeyInspection:      "Отладка",
		KeyStorageSaved:    "Хранилище сохранено",
		KeyNoErrors:        "Ошибок нет",
		KeyGeneralSettings: "Настройки %s",
	}
}
