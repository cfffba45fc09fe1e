package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeService_List(t *testing.T) {
	t.Parallel()

	svc := NewSchemeService()

	hi := svc.List("hi")
	require.Len(t, hi, 5)
	assert.Equal(t, "pm_kisan", hi[0].ID)
	assert.Equal(t, "प्रधानमंत्री किसान सम्मान निधि", hi[0].Name)
	assert.Equal(t, "https://pmkisan.gov.in", hi[0].Link)

	en := svc.List("en")
	assert.Equal(t, "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)", en[0].Name)

	// Untranslated languages fall back to English.
	ta := svc.List("ta")
	assert.Equal(t, en[0].Name, ta[0].Name)
	assert.Equal(t, en[0].Eligibility, ta[0].Eligibility)
}

func TestSoilService_Advisory(t *testing.T) {
	t.Parallel()

	svc := NewSoilService()

	hi := svc.Advisory("", "", "hi")
	require.NotNil(t, hi)
	assert.NotEmpty(t, hi.Summary)
	assert.NotEmpty(t, hi.NPKTip)
	assert.Equal(t, "https://soilhealth.dac.gov.in", hi.SoilHealthCardLink)

	en := svc.Advisory("Punjab", "Ludhiana", "en")
	assert.Contains(t, en.Summary, "Soil Health Card")

	// Untranslated languages fall back to Hindi.
	ta := svc.Advisory("", "", "ta")
	assert.Equal(t, hi.Summary, ta.Summary)
}

func TestSatelliteService_Info(t *testing.T) {
	t.Parallel()

	svc := NewSatelliteService()

	info := svc.Info(28.6, 77.2, "Delhi")
	require.NotNil(t, info)
	assert.Contains(t, info.BhuvanPortal, "bhuvan")
	assert.NotEmpty(t, info.DescriptionEn)
	assert.NotEmpty(t, info.DescriptionHi)
}
