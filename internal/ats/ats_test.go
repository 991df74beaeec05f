package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobscout-engine/internal/domain"
)

func TestNewSelectsAdapterByProvider(t *testing.T) {
	log := zap.NewNop()

	cases := []struct {
		provider domain.Provider
		co       domain.Company
		want     string
	}{
		{domain.ProviderGreenhouse, domain.Company{Name: "A", Provider: domain.ProviderGreenhouse, BoardSlug: "a"}, "greenhouse"},
		{domain.ProviderLever, domain.Company{Name: "B", Provider: domain.ProviderLever, BoardSlug: "b"}, "lever"},
		{domain.ProviderAshby, domain.Company{Name: "C", Provider: domain.ProviderAshby, BoardSlug: "c"}, "ashby"},
		{domain.ProviderSmartRecruiters, domain.Company{Name: "D", Provider: domain.ProviderSmartRecruiters, BoardSlug: "d"}, "smartrecruiters"},
		{domain.ProviderWorkday, domain.Company{Name: "E", Provider: domain.ProviderWorkday, BoardURL: "https://e.wd5.myworkdayjobs.com/External"}, "workday"},
	}
	for _, tc := range cases {
		sc, err := New(tc.co, nil, log)
		require.NoError(t, err, string(tc.provider))
		assert.Equal(t, tc.want, sc.Provider())
		assert.Equal(t, tc.co.Name, sc.Company())
	}
}

func TestNewFailsWithoutIdentifier(t *testing.T) {
	log := zap.NewNop()

	for _, p := range []domain.Provider{
		domain.ProviderGreenhouse,
		domain.ProviderLever,
		domain.ProviderAshby,
		domain.ProviderSmartRecruiters,
	} {
		_, err := New(domain.Company{Name: "X", Provider: p}, nil, log)
		assert.Error(t, err, string(p))
	}

	_, err := New(domain.Company{Name: "X", Provider: domain.ProviderWorkday}, nil, log)
	assert.Error(t, err)
}

func TestNewRejectsCustomAndUnknown(t *testing.T) {
	log := zap.NewNop()

	_, err := New(domain.Company{Name: "X", Provider: domain.ProviderCustom}, nil, log)
	assert.ErrorIs(t, err, ErrManualProvider)

	_, err = New(domain.Company{Name: "X", Provider: "taleo"}, nil, log)
	assert.Error(t, err)
}
