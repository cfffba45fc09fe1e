package services

// scheme holds a government scheme with per-language text. Only en and hi
// texts are hand-authored; other languages pick the closest available.
type scheme struct {
	ID          string
	Link        string
	Name        map[string]string
	Description map[string]string
	Eligibility map[string]string
}

// LocalizedScheme is a scheme resolved for one language.
type LocalizedScheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Link        string `json:"link"`
}

// Government schemes from official sources (pmkisan.gov.in, pmfby.gov.in).
var schemes = []scheme{
	{
		ID:   "pm_kisan",
		Link: "https://pmkisan.gov.in",
		Name: map[string]string{
			"en": "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)",
			"hi": "प्रधानमंत्री किसान सम्मान निधि",
		},
		Description: map[string]string{
			"en": "Income support of ₹6,000 per year in three equal instalments to land-holding farmer families. Direct Benefit Transfer (DBT).",
			"hi": "जमीन धारक किसान परिवारों को प्रति वर्ष ₹6,000 तीन किस्तों में। डायरेक्ट बेनिफिट ट्रांसफर (DBT)।",
		},
		Eligibility: map[string]string{
			"en": "Land-holding farmer families (subject to exclusions).",
			"hi": "जमीन धारक किसान परिवार (कुछ अपवाद)।",
		},
	},
	{
		ID:   "pmfby",
		Link: "https://pmfby.gov.in",
		Name: map[string]string{
			"en": "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
			"hi": "प्रधान मंत्री फसल बीमा योजना",
		},
		Description: map[string]string{
			"en": "Crop insurance against non-preventable risks. Low premium: 2% (kharif), 1.5% (rabi), 5% (commercial/horticulture).",
			"hi": "अप्रत्याशित जोखिम के खिलाफ फसल बीमा। प्रीमियम: 2% (खरीफ), 1.5% (रबी), 5% (वाणिज्यिक/बागवानी)।",
		},
		Eligibility: map[string]string{
			"en": "All farmers growing notified crops in notified areas.",
			"hi": "अधिसूचित क्षेत्रों में अधिसूचित फसलें उगाने वाले किसान।",
		},
	},
	{
		ID:   "kcc",
		Link: "https://www.rbi.org.in/Scripts/BS_ViewMasDirections.aspx?id=11133",
		Name: map[string]string{
			"en": "Kisan Credit Card (KCC)",
			"hi": "किसान क्रेडिट कार्ड",
		},
		Description: map[string]string{
			"en": "Credit for cultivation, inputs, and post-harvest expenses. Interest subvention. Short-term loans at concessional rates.",
			"hi": "खेती, निवेश और फसल के बाद के खर्च के लिए ऋण। ब्याज अनुदान। रियायती दरों पर अल्पकालिक ऋण।",
		},
		Eligibility: map[string]string{
			"en": "Individual farmers, tenant farmers, sharecroppers, and joint liability groups.",
			"hi": "व्यक्तिगत किसान, किरायेदार किसान, बटाईदार और संयुक्त देयता समूह।",
		},
	},
	{
		ID:   "soil_health",
		Link: "https://soilhealth.dac.gov.in",
		Name: map[string]string{
			"en": "Soil Health Card Scheme",
			"hi": "मृदा स्वास्थ्य कार्ड योजना",
		},
		Description: map[string]string{
			"en": "Free soil testing every 2 years. Card shows nutrient status and recommended doses of fertilisers.",
			"hi": "हर 2 साल मुफ्त मिट्टी परीक्षण। कार्ड में पोषक स्थिति और उर्वरक की सिफारिश।",
		},
		Eligibility: map[string]string{
			"en": "All farmers. Implemented by state governments.",
			"hi": "सभी किसान। राज्य सरकारों द्वारा लागू।",
		},
	},
	{
		ID:   "namo_drone",
		Link: "https://agriculture.gov.in",
		Name: map[string]string{
			"en": "NAMO Drone Didi / Drone Subsidy",
			"hi": "नमो ड्रोन दीदी",
		},
		Description: map[string]string{
			"en": "Subsidy for purchase of drones for agricultural spraying. Supports FPOs and rural women.",
			"hi": "कृषि छिड़काव के लिए ड्रोन खरीद पर सब्सिडी। FPO और ग्रामीण महिलाओं को समर्थन।",
		},
		Eligibility: map[string]string{
			"en": "FPOs, rural women entrepreneurs, as per scheme guidelines.",
			"hi": "FPO, ग्रामीण महिला उद्यमी, योजना दिशानिर्देश के अनुसार।",
		},
	},
}

// SchemeService serves the static government scheme catalogue.
type SchemeService struct{}

// NewSchemeService creates a SchemeService.
func NewSchemeService() *SchemeService {
	return &SchemeService{}
}

// List returns all schemes with text resolved for the requested language.
// Missing translations fall back to Hindi for Hindi requests and English
// otherwise.
func (s *SchemeService) List(language string) []LocalizedScheme {
	out := make([]LocalizedScheme, 0, len(schemes))
	for _, sc := range schemes {
		out = append(out, LocalizedScheme{
			ID:          sc.ID,
			Name:        pickText(sc.Name, language),
			Description: pickText(sc.Description, language),
			Eligibility: pickText(sc.Eligibility, language),
			Link:        sc.Link,
		})
	}
	return out
}

// pickText selects the text for language, falling back to English.
func pickText(texts map[string]string, language string) string {
	if v, ok := texts[language]; ok && v != "" {
		return v
	}
	return texts["en"]
}
