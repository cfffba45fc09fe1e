package services

// SatelliteInfo links to government satellite/NDVI portals with a localized
// description. No live tile or NDVI fetch is performed.
type SatelliteInfo struct {
	BhuvanPortal   string `json:"bhuvan_portal"`
	NDVIDataPortal string `json:"ndvi_data_portal"`
	DescriptionEn  string `json:"description_en"`
	DescriptionHi  string `json:"description_hi"`
	Description    string `json:"description,omitempty"`
}

// SatelliteService serves static satellite data portal references.
type SatelliteService struct{}

// NewSatelliteService creates a SatelliteService.
func NewSatelliteService() *SatelliteService {
	return &SatelliteService{}
}

// Info returns portal links and NDVI guidance for agriculture. Coordinates
// and state are accepted for future tile lookups.
func (s *SatelliteService) Info(lat, lon float64, state string) *SatelliteInfo {
	return &SatelliteInfo{
		BhuvanPortal:   "https://bhuvan-app1.nrsc.gov.in/",
		NDVIDataPortal: "https://www.data.gov.in/resource/oceansat-2ocm-ndvi-india-coverage",
		DescriptionEn:  "Use Bhuvan and data.gov.in for NDVI and crop condition maps. Oceansat-2 OCM NDVI available at 1 km resolution.",
		DescriptionHi:  "NDVI और फसल स्थिति मानचित्र के लिए भुवन और data.gov.in का उपयोग करें। 1 किमी रिज़ॉल्यूशन पर Oceansat-2 OCM NDVI उपलब्ध।",
	}
}
