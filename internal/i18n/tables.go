package i18n

// Static translation tables for pest and treatment names. These are
// hand-authored constants kept in process memory, not file-backed; the
// canonical English label is the lookup key.

var pestTranslations = map[string]map[string]string{
	"Pink Bollworm": {
		"hi": "गुलाबी सुंडी", "bn": "পিংক বলওয়ার্ম", "te": "పింక్ బాల్‌వార్మ్",
		"ta": "இளஞ்சிவப்பு புழு", "mr": "गुलाबी सुंडी", "gu": "ગુલાબી સુંડી",
		"kn": "ಪಿಂಕ್ ಬಾಲ್ವಾರ್ಮ್", "or": "ଗୋଲାପୀ ସୁଣ୍ଡି", "ml": "പിങ്ക് ബോൾവേം",
		"pa": "ਗੁਲਾਬੀ ਸੁੰਡੀ", "as": "পিংক বলৱাৰ্ম", "mai": "गुलाबी सुंडी",
		"sat": "Pink Bollworm", "ks": "गुलाबी सुंडी", "en": "Pink Bollworm",
	},
	"Whitefly": {
		"hi": "सफेद मक्खी", "bn": "সাদা মাছি", "te": "తెల్ల ఈగ", "ta": "வெள்ளை ஈ",
		"mr": "पांढरी माशी", "gu": "સફેદ માખી", "kn": "ಬಿಳಿ ನೊಣ",
		"or": "ଧଳା ମାଛି", "ml": "വെളുത്ത ഈ", "pa": "ਚਿੱਟੀ ਮੱਖੀ",
		"as": "বগা মাখি", "mai": "सफेद मक्खी", "sat": "Whitefly", "ks": "सफेद मक्खी", "en": "Whitefly",
	},
}

var treatmentTranslations = map[string]map[string]string{
	"Spray Neem Oil": {
		"hi": "नीम का तेल छिड़कें", "bn": "নিম তেল স্প্রে করুন", "te": "వేప నూనె స్ప్రే చేయండి",
		"ta": "வேப்ப எண்ணெய் தெளிக்கவும்", "mr": "कडुनिंब तेल स्प्रे करा", "gu": "લીમડાનું તેલ સ્પ્રે કરો",
		"kn": "ಬೇವು ಎಣ್ಣೆ ಸಿಂಪಡಿಸಿ", "or": "ନିମ ତେଲ ସ୍ପ୍ରେ କରନ୍ତୁ", "ml": "വേപ്പ് എണ്ണ സ്പ്രേ ചെയ്യുക",
		"pa": "ਨੀਮ ਦਾ ਤੇਲ ਸਪ੍ਰੇ ਕਰੋ", "as": "নিম তেল স্প্ৰে কৰক", "mai": "नीम का तेल छिड़कें",
		"sat": "Spray Neem Oil", "ks": "नीम का तेल छिड़कें", "en": "Spray Neem Oil",
	},
}

// cropKeyMap maps mandi commodity names to crops.* keys in the common module.
var cropKeyMap = map[string]string{
	"Rice":      "paddy",
	"Wheat":     "wheat",
	"Cotton":    "cotton",
	"Soybean":   "soybean",
	"Groundnut": "groundnut",
	"Chickpea":  "chickpea",
	"Sugarcane": "sugarcane",
	"Maize":     "maize",
}
