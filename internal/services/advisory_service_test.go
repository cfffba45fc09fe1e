package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisoryService_Get(t *testing.T) {
	t.Parallel()

	tr := newChatbotTranslator(t)
	soil := &fakeSoil{advisory: &SoilAdvisory{Summary: "कार्ड बनवाएं।", NPKTip: "NPK संतुलन।"}}

	t.Run("weather and soil composed", func(t *testing.T) {
		t.Parallel()

		svc := NewAdvisoryService(tr, &fakeWeather{data: sunnyWeather()}, soil)
		advisory := svc.Get(context.Background(), "hi", 0, 0, "")

		require.NotNil(t, advisory)
		assert.Equal(t, "धूप, 31°C. कार्ड बनवाएं।", advisory.Text)
		assert.Equal(t, "NPK संतुलन।", advisory.SoilTip)
		require.NotNil(t, advisory.Weather)
		assert.Equal(t, "sunny", advisory.Weather.Condition)
	})

	t.Run("weather failure drops weather fragment", func(t *testing.T) {
		t.Parallel()

		svc := NewAdvisoryService(tr, &fakeWeather{err: errors.New("down")}, soil)
		advisory := svc.Get(context.Background(), "hi", 0, 0, "")

		assert.Equal(t, "कार्ड बनवाएं।", advisory.Text)
		assert.Nil(t, advisory.Weather)
	})
}
