package services

// SoilAdvisory is the localized soil advisory payload.
type SoilAdvisory struct {
	Summary            string `json:"summary"`
	NPKTip             string `json:"npk_tip"`
	SoilHealthCardLink string `json:"soil_health_card_link"`
}

const soilHealthCardLink = "https://soilhealth.dac.gov.in"

// regionAdvisory holds per-language advisory text for one region.
type regionAdvisory struct {
	Summary map[string]string
	NPKTip  map[string]string
}

// Advisory text keyed by state name; the default entry serves every region
// until region-specific data is authored.
var soilAdvisoryByRegion = map[string]regionAdvisory{
	"default": {
		Summary: map[string]string{
			"en": "Get your Soil Health Card from the nearest soil testing lab. Use recommended NPK to improve yield.",
			"hi": "नजदीकी मृदा परीक्षण प्रयोगशाला से मृदा स्वास्थ्य कार्ड बनवाएं। उपज बढ़ाने के लिए अनुशंसित NPK का उपयोग करें।",
		},
		NPKTip: map[string]string{
			"en": "Balance N-P-K based on soil test. Avoid excess urea; use neem-coated urea where advised.",
			"hi": "मृदा परीक्षण के आधार पर N-P-K संतुलन। अधिक यूरिया से बचें; जहां सलाह हो वहां नीम-लेपित यूरिया उपयोग करें।",
		},
	},
}

// SoilService serves static soil health advisories.
type SoilService struct{}

// NewSoilService creates a SoilService.
func NewSoilService() *SoilService {
	return &SoilService{}
}

// Advisory returns the soil advisory for a state and district. The district
// is accepted for future region-specific data but does not narrow the lookup
// yet. Text falls back language → hi → en.
func (s *SoilService) Advisory(state, district, language string) *SoilAdvisory {
	key := state
	if key == "" {
		key = "default"
	}
	region, ok := soilAdvisoryByRegion[key]
	if !ok {
		region = soilAdvisoryByRegion["default"]
	}
	return &SoilAdvisory{
		Summary:            pickRegionalText(region.Summary, language),
		NPKTip:             pickRegionalText(region.NPKTip, language),
		SoilHealthCardLink: soilHealthCardLink,
	}
}

// pickRegionalText selects text for language, falling back to hi then en.
func pickRegionalText(texts map[string]string, language string) string {
	if v, ok := texts[language]; ok && v != "" {
		return v
	}
	if v, ok := texts["hi"]; ok && v != "" {
		return v
	}
	return texts["en"]
}
