package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomain(t *testing.T) {
	tests := []struct {
		input   string
		want    Domain
		wantErr bool
	}{
		{"Frontend", DomainFrontend, false},
		{"Backend", DomainBackend, false},
		{"FullStack", DomainFullStack, false},
		{"DevOpsCloud", DomainDevOpsCloud, false},
		{"DataScienceML", DomainDataScienceML, false},
		{"Mobile", DomainMobile, false},
		{"Other", DomainOther, false},
		{"frontend", "", true},
		{"Quantum", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDomain(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDomainPriorityCoversEveryDomain(t *testing.T) {
	assert.Len(t, DomainPriority, 7)
	assert.Equal(t, DomainFrontend, DomainPriority[0], "priority order starts with Frontend")
	assert.Equal(t, DomainOther, DomainPriority[len(DomainPriority)-1], "Other is the fallback, last in priority")
}
