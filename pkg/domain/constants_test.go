package domain_test

import (
	"testing"

	"github.com/aretw0/zerohour/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllDomains(t *testing.T) {
	assert.Equal(t, []domain.Domain{
		domain.DomainLegal,
		domain.DomainCyber,
		domain.DomainReputational,
		domain.DomainThirdParty,
	}, domain.AllDomains())
}

func TestDomains_Get(t *testing.T) {
	reports := domain.Domains{
		Legal:        domain.DomainReport{Status: domain.StatusActive, Note: "legal"},
		Cyber:        domain.DomainReport{Status: domain.StatusForming, Note: "cyber"},
		Reputational: domain.DomainReport{Status: domain.StatusNeutral, Note: "reputational"},
		ThirdParty:   domain.DomainReport{Status: domain.StatusActive, Note: "third_party"},
	}

	for _, name := range domain.AllDomains() {
		got, ok := reports.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, string(name), got.Note)
	}

	_, ok := reports.Get("finance")
	assert.False(t, ok)
}
