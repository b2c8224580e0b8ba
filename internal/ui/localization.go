package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyDownloading    = "downloading"
	KeyAuthorizing    = "authorizing"
	KeyListing        = "listing"
	KeyLoadFailed     = "load_failed"
	KeyNoImages       = "no_images"
	KeyImagesLoaded   = "images_loaded"
	KeyAuthTitle      = "auth_title"
	KeyAuthHint       = "auth_hint"
	KeyAuthOpenLink   = "auth_open_link"
	KeyAuthCode       = "auth_code"
	KeyAuthCodeHint   = "auth_code_hint"
	KeyConnect        = "connect"
	KeyCancel         = "cancel"
	KeySkippedSummary = "skipped_summary"

	KeySettingsTitle     = "settings_title"
	KeySettingsSlideshow = "settings_slideshow"
	KeySettingsInterface = "settings_interface"
	KeySwapInterval      = "swap_interval"
	KeyRootFolder        = "root_folder"
	KeyExtensions        = "extensions"
	KeyMaxDimension      = "max_dimension"
	KeyFullscreen        = "fullscreen"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeySettingsSaved     = "settings_saved"
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

// SetLanguage sets the current language. "system" follows the OS locale;
// unknown languages fall back to English.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = "en"
}

// systemLanguage returns the base language of the OS locale, e.g. "ru" for "ru-RU"
func systemLanguage() string {
	code, _, _ := strings.Cut(lang.SystemLocale().LanguageString(), "-")
	return strings.ToLower(code)
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Gallery Viewer",
		KeyDownloading:    "Downloading images!",
		KeyAuthorizing:    "Waiting for Dropbox authorization...",
		KeyListing:        "Looking for images...",
		KeyLoadFailed:     "Could not load images",
		KeyNoImages:       "No images found",
		KeyImagesLoaded:   "Images loaded",
		KeyAuthTitle:      "Connect to Dropbox",
		KeyAuthHint:       "Allow access in your browser, then paste the code Dropbox shows you.",
		KeyAuthOpenLink:   "Open authorization page",
		KeyAuthCode:       "Code",
		KeyAuthCodeHint:   "Paste the authorization code",
		KeyConnect:        "Connect",
		KeyCancel:         "Cancel",
		KeySkippedSummary: "%d loaded, %d skipped",

		KeySettingsTitle:     "Settings",
		KeySettingsSlideshow: "Slideshow (applies on next start)",
		KeySettingsInterface: "Interface",
		KeySwapInterval:      "Seconds per image:",
		KeyRootFolder:        "Dropbox folder:",
		KeyExtensions:        "File suffixes:",
		KeyMaxDimension:      "Max image size, px (0 = original):",
		KeyFullscreen:        "Fullscreen",
		KeyLanguage:          "Language:",
		KeySave:              "Save",
		KeySettingsSaved:     "Settings saved",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Просмотр галереи",
		KeyDownloading:    "Загрузка изображений!",
		KeyAuthorizing:    "Ожидание авторизации Dropbox...",
		KeyListing:        "Поиск изображений...",
		KeyLoadFailed:     "Не удалось загрузить изображения",
		KeyNoImages:       "Изображения не найдены",
		KeyImagesLoaded:   "Изображения загружены",
		KeyAuthTitle:      "Подключение к Dropbox",
		KeyAuthHint:       "Разрешите доступ в браузере и вставьте код, который покажет Dropbox.",
		KeyAuthOpenLink:   "Открыть страницу авторизации",
		KeyAuthCode:       "Код",
		KeyAuthCodeHint:   "Вставьте код авторизации",
		KeyConnect:        "Подключить",
		KeyCancel:         "Отмена",
		KeySkippedSummary: "загружено: %d, пропущено: %d",

		KeySettingsTitle:     "Настройки",
		KeySettingsSlideshow: "Слайдшоу (применится при следующем запуске)",
		KeySettingsInterface: "Интерфейс",
		KeySwapInterval:      "Секунд на изображение:",
		KeyRootFolder:        "Папка Dropbox:",
		KeyExtensions:        "Расширения файлов:",
		KeyMaxDimension:      "Макс. размер, px (0 = исходный):",
		KeyFullscreen:        "Полноэкранный режим",
		KeyLanguage:          "Язык:",
		KeySave:              "Сохранить",
		KeySettingsSaved:     "Настройки сохранены",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Visualizador de Galeria",
		KeyDownloading:    "Baixando imagens!",
		KeyAuthorizing:    "Aguardando autorização do Dropbox...",
		KeyListing:        "Procurando imagens...",
		KeyLoadFailed:     "Não foi possível carregar as imagens",
		KeyNoImages:       "Nenhuma imagem encontrada",
		KeyImagesLoaded:   "Imagens carregadas",
		KeyAuthTitle:      "Conectar ao Dropbox",
		KeyAuthHint:       "Permita o acesso no navegador e cole o código exibido pelo Dropbox.",
		KeyAuthOpenLink:   "Abrir página de autorização",
		KeyAuthCode:       "Código",
		KeyAuthCodeHint:   "Cole o código de autorização",
		KeyConnect:        "Conectar",
		KeyCancel:         "Cancelar",
		KeySkippedSummary: "%d carregadas, %d ignoradas",

		KeySettingsTitle:     "Configurações",
		KeySettingsSlideshow: "Apresentação (aplica no próximo início)",
		KeySettingsInterface: "Interface",
		KeySwapInterval:      "Segundos por imagem:",
		KeyRootFolder:        "Pasta do Dropbox:",
		KeyExtensions:        "Sufixos de arquivo:",
		KeyMaxDimension:      "Tamanho máx., px (0 = original):",
		KeyFullscreen:        "Tela cheia",
		KeyLanguage:          "Idioma:",
		KeySave:              "Salvar",
		KeySettingsSaved:     "Configurações salvas",
	}
}
