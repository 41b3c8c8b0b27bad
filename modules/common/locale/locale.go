package locale

// Language - UI language selected by the client
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// Message keys for user-facing errors. Every key carries an en and ru variant;
// unknown keys fall back to the key itself so a miss is visible, not a crash.
const (
	MsgBusy               = "busy"
	MsgNoSourceImage      = "no_source_image"
	MsgInvalidImage       = "invalid_image"
	MsgNoImageProduced    = "no_image_produced"
	MsgPromptRequired     = "prompt_required"
	MsgMirrorRootMissing  = "mirror_root_missing"
	MsgMirrorRootInvalid  = "mirror_root_invalid"
	MsgTooManyReferences  = "too_many_references"
	MsgUnexpected         = "unexpected"
	MsgHistoryItemMissing = "history_item_missing"
)

var messages = map[string]map[Language]string{
	MsgBusy: {
		English: "A request is already in progress. Please wait for it to finish.",
		Russian: "Запрос уже выполняется. Пожалуйста, дождитесь его завершения.",
	},
	MsgNoSourceImage: {
		English: "Please upload an image to edit.",
		Russian: "Пожалуйста, загрузите изображение для редактирования.",
	},
	MsgInvalidImage: {
		English: "The image is not in a supported format.",
		Russian: "Изображение имеет неподдерживаемый формат.",
	},
	MsgNoImageProduced: {
		English: "The service returned no image. Try adjusting the prompt.",
		Russian: "Сервис не вернул изображение. Попробуйте изменить запрос.",
	},
	MsgPromptRequired: {
		English: "A prompt is required to generate an image.",
		Russian: "Для генерации изображения требуется запрос.",
	},
	MsgMirrorRootMissing: {
		English: "No save folder has been linked yet.",
		Russian: "Папка для сохранения еще не выбрана.",
	},
	MsgMirrorRootInvalid: {
		English: "The selected folder is not accessible for writing.",
		Russian: "Выбранная папка недоступна для записи.",
	},
	MsgTooManyReferences: {
		English: "At most 3 reference images are supported.",
		Russian: "Поддерживается не более 3 референсных изображений.",
	},
	MsgUnexpected: {
		English: "An unexpected error occurred.",
		Russian: "Произошла непредвиденная ошибка.",
	},
	MsgHistoryItemMissing: {
		English: "History item not found.",
		Russian: "Элемент истории не найден.",
	},
}

// Normalize - unknown or empty languages default to English
func Normalize(lang string) Language {
	if Language(lang) == Russian {
		return Russian
	}
	return English
}

// Message - localized text for a message key
func Message(lang Language, key string) string {
	variants, ok := messages[key]
	if !ok {
		return key
	}
	if text, ok := variants[lang]; ok {
		return text
	}
	return variants[English]
}
