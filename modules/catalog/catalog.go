package catalog

// Curated catalogs for the studio controls. The first entry of every optional
// catalog is its sentinel; the composer drops clauses whose value matches it.

// ModelPoses - pose presets, grouped by scene
var ModelPoses = []OptionGroup{
	{
		Name: Label{EN: "Fashion & Alternative", RU: "Fashion и Альтернатива"},
		Options: []Option{
			{Value: SentinelNone, Label: Label{EN: "None (Default)", RU: "Нет (По умолчанию)"}},
			{Value: "Hands on hips confident", Label: Label{EN: "Confident Hands on Hips", RU: "Руки на бедрах (Уверенная)"}},
			{Value: "Dramatic Editorial Lean", Label: Label{EN: "Dramatic Editorial Lean", RU: "Драматичный наклон (Editorial)"}},
			{Value: "Looking over shoulder", Label: Label{EN: "Looking Over Shoulder", RU: "Взгляд через плечо"}},
			{Value: "Crossed legs standing", Label: Label{EN: "Crossed Legs Standing", RU: "Скрестив ноги стоя"}},
			{Value: "Asymmetric artistic pose", Label: Label{EN: "Asymmetric Artistic", RU: "Асимметричная арт-поза"}},
			{Value: "Crouching fashion pose", Label: Label{EN: "Crouching Fashion", RU: "Поза на кортах (Fashion)"}},
			{Value: "Hand touching hair", Label: Label{EN: "Hand Touching Hair", RU: "Рука трогает прическу"}},
		},
	},
	{
		Name: Label{EN: "Action & Motion", RU: "Движение и Динамика"},
		Options: []Option{
			{Value: "Sprinting motion", Label: Label{EN: "Sprinting", RU: "Бег (Спринт)"}},
			{Value: "Mid-air jump", Label: Label{EN: "Mid-air Jump", RU: "Прыжок в воздухе"}},
			{Value: "Spinning dress motion", Label: Label{EN: "Spinning (Dress Motion)", RU: "Вращение (Движение платья)"}},
			{Value: "Walking briskly", Label: Label{EN: "Walking Briskly", RU: "Быстрая походка"}},
			{Value: "Dynamic dance move", Label: Label{EN: "Dance Move", RU: "Танцевальное движение"}},
		},
	},
	{
		Name: Label{EN: "Street & Outdoor", RU: "Улица и Город"},
		Options: []Option{
			{Value: "Leaning against wall", Label: Label{EN: "Leaning Against Wall", RU: "Опираясь на стену"}},
			{Value: "Crossing the street", Label: Label{EN: "Crossing Street", RU: "Переходит дорогу"}},
			{Value: "Sitting on park bench", Label: Label{EN: "Sitting on Bench", RU: "Сидит на скамейке"}},
			{Value: "Adjusting sunglasses", Label: Label{EN: "Adjusting Sunglasses", RU: "Поправляет очки"}},
		},
	},
	{
		Name: Label{EN: "Office & Work", RU: "Офис и Работа"},
		Options: []Option{
			{Value: "Typing on laptop", Label: Label{EN: "Typing on Laptop", RU: "Работает за ноутбуком"}},
			{Value: "Presenting at whiteboard", Label: Label{EN: "Presenting", RU: "Презентация у доски"}},
			{Value: "Holding coffee folder", Label: Label{EN: "Holding Folder/Coffee", RU: "С папкой и кофе"}},
			{Value: "Thinking at desk", Label: Label{EN: "Thinking at Desk", RU: "Задумчивость за столом"}},
		},
	},
	{
		Name: Label{EN: "Home & Lifestyle", RU: "Дом и Лайфстайл"},
		Options: []Option{
			{Value: "Curled up on sofa", Label: Label{EN: "Curled on Sofa", RU: "Уютно на диване"}},
			{Value: "Reading a book", Label: Label{EN: "Reading Book", RU: "Читает книгу"}},
			{Value: "Cooking in kitchen", Label: Label{EN: "Cooking", RU: "Готовит на кухне"}},
			{Value: "Looking out window", Label: Label{EN: "Looking Out Window", RU: "Смотрит в окно"}},
		},
	},
}

// SubjectEmotions - emotion/expression presets
var SubjectEmotions = []OptionGroup{
	{
		Name: Label{EN: "Positive & Bright", RU: "Позитив и Свет"},
		Options: []Option{
			{Value: SentinelNone, Label: Label{EN: "None (Default)", RU: "Нет (По умолчанию)"}},
			{Value: "Gentle Smile", Label: Label{EN: "Gentle Smile", RU: "Легкая улыбка"}},
			{Value: "Radiant Laughing", Label: Label{EN: "Radiant Laughing", RU: "Лучезарный смех"}},
			{Value: "Serene Tranquility", Label: Label{EN: "Serene & Calm", RU: "Безмятежное спокойствие"}},
			{Value: "Triumphant Success", Label: Label{EN: "Triumphant Pose", RU: "Триумф и успех"}},
		},
	},
	{
		Name: Label{EN: "Fashion & High-End", RU: "Fashion и Стиль"},
		Options: []Option{
			{Value: "Haughty Superiority", Label: Label{EN: "Superior/Haughty", RU: "Высокомерие и превосходство"}},
			{Value: "Distant Nonchalance", Label: Label{EN: "Nonchalant/Bored", RU: "Холодная отрешенность"}},
			{Value: "Fierce Determination", Label: Label{EN: "Fierce Determination", RU: "Яростная решимость"}},
			{Value: "Confident Smirk", Label: Label{EN: "Confident Smirk", RU: "Уверенная ухмылка"}},
		},
	},
	{
		Name: Label{EN: "Intense & Dramatic", RU: "Драма и Эмоции"},
		Options: []Option{
			{Value: "Melancholic Pensive", Label: Label{EN: "Melancholic/Pensive", RU: "Меланхоличное раздумье"}},
			{Value: "Intense Stare", Label: Label{EN: "Intense Piercing Stare", RU: "Пронзительный взгляд"}},
			{Value: "Shocked Surprised", Label: Label{EN: "Shocked/Surprised", RU: "Шок и удивление"}},
			{Value: "Angry Confrontational", Label: Label{EN: "Angry/Confrontational", RU: "Гнев и вызов"}},
		},
	},
}

// LightingSetups - lighting presets
var LightingSetups = []OptionGroup{
	{
		Name: Label{EN: "Professional Studio", RU: "Профессиональная студия"},
		Options: []Option{
			{Value: SentinelDefault, Label: Label{EN: "Default", RU: "По умолчанию"}},
			{Value: "Softbox Lighting", Label: Label{EN: "Softbox (Even & Soft)", RU: "Мягкий свет (Софтбокс)"}},
			{Value: "Fashion Editorial Setup", Label: Label{EN: "Fashion (Garment Focus)", RU: "Съемка одежды (Fashion)"}},
			{Value: "Rembrandt Lighting", Label: Label{EN: "Rembrandt (Dramatic)", RU: "Рембрандтовский свет"}},
			{Value: "Butterfly Lighting", Label: Label{EN: "Butterfly (Glamour)", RU: "Свет \"Бабочка\" (Гламур)"}},
			{Value: "High Key", Label: Label{EN: "High Key (Bright)", RU: "Высокий ключ"}},
			{Value: "Low Key", Label: Label{EN: "Low Key (Moody)", RU: "Низкий ключ"}},
		},
	},
	{
		Name: Label{EN: "Specialized & Artistic", RU: "Спецэффекты и Арт"},
		Options: []Option{
			{Value: "Narrow Beam Spotlight", Label: Label{EN: "Narrow Beam Spot", RU: "Узконаправленный луч"}},
			{Value: "Rim Backlighting", Label: Label{EN: "Rim / Backlight", RU: "Контровой свет"}},
			{Value: "Silhouette Lighting", Label: Label{EN: "Silhouette (Backlit)", RU: "Силуэт"}},
			{Value: "Stage Gels", Label: Label{EN: "Stage Gels (Colored)", RU: "Сценический (Цветной)"}},
		},
	},
	{
		Name: Label{EN: "Natural & Outdoor", RU: "Естественный и Уличный"},
		Options: []Option{
			{Value: "Golden Hour", Label: Label{EN: "Golden Hour", RU: "Золотой час"}},
			{Value: "Direct Hard Sunlight", Label: Label{EN: "Direct Hard Sun", RU: "Прямое жесткое солнце"}},
			{Value: "Overcast Soft Light", Label: Label{EN: "Overcast (Soft)", RU: "Пасмурно (Рассеянный)"}},
			{Value: "Blue Hour", Label: Label{EN: "Blue Hour (Twilight)", RU: "Сумерки"}},
		},
	},
	{
		Name: Label{EN: "Indoor & Domestic", RU: "Интерьерный и Бытовой"},
		Options: []Option{
			{Value: "Cozy Warm Lamp", Label: Label{EN: "Cozy Home Lamp", RU: "Теплый домашний свет"}},
			{Value: "Window Soft Light", Label: Label{EN: "Window Light", RU: "Свет из окна"}},
			{Value: "Candlelight Intimate", Label: Label{EN: "Candlelight", RU: "Свет свечи"}},
			{Value: "Cyberpunk Neon", Label: Label{EN: "Neon / Cyberpunk", RU: "Неон (Киберпанк)"}},
		},
	},
}

// Backgrounds - backdrop presets
var Backgrounds = []OptionGroup{
	{
		Name: Label{EN: "Studio Backdrops", RU: "Студийные фоны"},
		Options: []Option{
			{Value: SentinelNone, Label: Label{EN: "None (Default)", RU: "Нет (По умолчанию)"}},
			{Value: "Clean White Cyclorama", Label: Label{EN: "White Cyclorama", RU: "Белая циклорама"}},
			{Value: "Solid Black Backdrop", Label: Label{EN: "Solid Black", RU: "Черный фон"}},
			{Value: "Neutral Gray Paper", Label: Label{EN: "Neutral Gray", RU: "Серый бумажный"}},
			{Value: "Industrial Concrete Wall", Label: Label{EN: "Concrete Wall", RU: "Бетонная стена"}},
			{Value: "Green Screen", Label: Label{EN: "Green Screen", RU: "Хромакей"}},
		},
	},
	{
		Name: Label{EN: "General Locations", RU: "Общий план / Локации"},
		Options: []Option{
			{Value: "Blurred City Street", Label: Label{EN: "Blurred City Street", RU: "Размытая улица города"}},
			{Value: "Luxury Hotel Interior", Label: Label{EN: "Luxury Interior", RU: "Интерьер отеля (Люкс)"}},
			{Value: "Lush Green Forest", Label: Label{EN: "Lush Forest", RU: "Густой лес"}},
			{Value: "Tropical Beach Sunset", Label: Label{EN: "Beach Sunset", RU: "Пляж (Закат)"}},
			{Value: "Futuristic Cyberpunk Alley", Label: Label{EN: "Cyberpunk Alley", RU: "Киберпанк-переулок"}},
			{Value: "Mountain Peak Vista", Label: Label{EN: "Mountain Peak", RU: "Горная вершина"}},
		},
	},
}

// CameraAngles - shot type presets. The categorized shape is the superset
// schema; older flat catalogs are folded into it during history migration.
var CameraAngles = []OptionGroup{
	{
		Name: Label{EN: "Portrait & General", RU: "Портретные и Общие"},
		Options: []Option{
			{Value: SentinelDefault, Label: Label{EN: "Default", RU: "По умолчанию"}},
			{Value: "Eye Level", Label: Label{EN: "Eye Level (Natural)", RU: "На уровне глаз"}},
			{Value: "Low Angle", Label: Label{EN: "Low Angle (Heroic)", RU: "Снизу (Героический)"}},
			{Value: "High Angle", Label: Label{EN: "High Angle", RU: "Сверху"}},
			{Value: "Dutch Angle", Label: Label{EN: "Dutch Angle (Tilted)", RU: "Голландский угол"}},
			{Value: "Over-the-Shoulder", Label: Label{EN: "Over-the-Shoulder", RU: "Из-за плеча"}},
		},
	},
	{
		Name: Label{EN: "High-End Fashion & Editorial", RU: "Fashion-студия (Мировые бренды)"},
		Options: []Option{
			{Value: "Full Length Catalogue", Label: Label{EN: "Full Length (Catalogue Style)", RU: "В полный рост (Каталог)"}},
			{Value: "Three-Quarter Fashion", Label: Label{EN: "Three-Quarter View", RU: "Три четверти (Коммерция)"}},
			{Value: "Beauty Headshot", Label: Label{EN: "Beauty Headshot (Tight)", RU: "Бьюти-портрет (Крупно)"}},
			{Value: "Editorial Low Angle", Label: Label{EN: "Editorial Low Angle (Hero)", RU: "Нижний ракурс (Editorial)"}},
			{Value: "Back Profile Fashion", Label: Label{EN: "Back View (Couture Focus)", RU: "Вид со спины (Акцент на крое)"}},
		},
	},
	{
		Name: Label{EN: "Product & Still Life", RU: "Предметная съемка"},
		Options: []Option{
			{Value: "Flat Lay", Label: Label{EN: "Flat Lay (90° Top-Down)", RU: "Строго сверху (Flat Lay)"}},
			{Value: "45-Degree Angle", Label: Label{EN: "45-Degree Angle", RU: "Угол 45 градусов"}},
			{Value: "Macro Detail", Label: Label{EN: "Macro (Texture)", RU: "Макро (Детали)"}},
		},
	},
}

// CameraModels - camera body presets
var CameraModels = []Option{
	{Value: SentinelDefault, Label: Label{EN: "Default", RU: "По умолчанию"}},
	{Value: "Sony A7R V", Label: Label{EN: "Sony A7R V", RU: "Sony A7R V"}},
	{Value: "Canon EOS R5", Label: Label{EN: "Canon EOS R5", RU: "Canon EOS R5"}},
	{Value: "Hasselblad X2D", Label: Label{EN: "Hasselblad X2D", RU: "Hasselblad"}},
}

// Lenses - lens presets
var Lenses = []Option{
	{Value: SentinelDefault, Label: Label{EN: "Default", RU: "По умолчанию"}},
	{Value: "85mm f/1.2", Label: Label{EN: "85mm f/1.2 (Portrait)", RU: "85mm f/1.2"}},
	{Value: "35mm f/1.4", Label: Label{EN: "35mm f/1.4 (Street)", RU: "35mm f/1.4"}},
	{Value: "50mm Prime", Label: Label{EN: "50mm f/1.4 Prime", RU: "50mm Prime"}},
}

// Apertures - aperture presets
var Apertures = []Option{
	{Value: SentinelDefault, Label: Label{EN: "Default", RU: "По умолчанию"}},
	{Value: "f/1.2", Label: Label{EN: "f/1.2 (Soft Bokeh)", RU: "f/1.2"}},
	{Value: "f/2.8", Label: Label{EN: "f/2.8 (Sharp Subject)", RU: "f/2.8"}},
	{Value: "f/8.0", Label: Label{EN: "f/8.0 (Everything Sharp)", RU: "f/8.0"}},
}

// PhotoTypes - style prefixes; the first entry is the default
var PhotoTypes = []string{
	"Photorealistic", "Oil painting", "Watercolor", "Sketch", "Abstract",
	"Conceptual art", "Minimalist", "Retro", "Sci-fi", "Fantasy",
	"Cyberpunk", "Steampunk", "Anime", "Cartoon", "3D render", "Impressionist",
	"Vector Art", "Stencil Art",
}

// VisualEffects - effect tags; "None" is the sentinel
var VisualEffects = []string{
	EffectNone,
	"Cinematic Lighting",
	"Bokeh (Background Blur)",
	"HDR (High Dynamic Range)",
	"Glitch Effect",
	"Vignette",
	"Double Exposure",
	"Lens Flare",
	"Motion Blur",
	"Film Grain",
	"Sepia Tone",
	"Black & White High Contrast",
	"Neon Glow",
	"Chromatic Aberration",
	"Polaroid Style",
	"Tilt-Shift",
	"Soft Focus",
}

// FocusAreas - the 3x3 grid cells, row by row
var FocusAreas = []FocusArea{
	FocusTopLeft, FocusTopCenter, FocusTopRight,
	FocusMiddleLeft, FocusCenter, FocusMiddleRight,
	FocusBottomLeft, FocusBottomCenter, FocusBottomRight,
}

// DefaultPhotoType - the style applied to a fresh session
func DefaultPhotoType() string { return PhotoTypes[0] }

// DefaultVisualEffect - the effect applied to a fresh session
func DefaultVisualEffect() string { return VisualEffects[0] }

// IsValidAspectRatio - membership check against the fixed ratio set
func IsValidAspectRatio(ar AspectRatio) bool {
	for _, v := range AspectRatios {
		if v == ar {
			return true
		}
	}
	return false
}

// IsValidQuality - membership check against the fixed tier set
func IsValidQuality(q ImageQuality) bool {
	for _, v := range Qualities {
		if v == q {
			return true
		}
	}
	return false
}
