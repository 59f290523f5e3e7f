package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threadline/bagging-service/config"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.PackingConfig
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates service with default config",
			cfg:  config.PackingConfig{},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Bagging)
				assert.Equal(t, 5000, components.Bagging.TargetCapacity())
			},
		},
		{
			name: "creates service with custom capacity",
			cfg: config.PackingConfig{
				TargetCapacityMeters: 4000,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.Equal(t, 4000, components.Bagging.TargetCapacity())
			},
		},
		{
			name: "creates service with custom reel sizes",
			cfg: config.PackingConfig{
				TargetCapacityMeters: 5000,
				StandardReelSizes:    []int{1000, 2500, 5000},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Bagging)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, memoryComponents())
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Bagging(t *testing.T) {
	components := InitializeServices(config.PackingConfig{}, memoryComponents())
	require.NotNil(t, components.Bagging)

	// An empty order book produces an empty pass.
	outcome, err := components.Bagging.CreateBags(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, outcome.Bags)
	assert.Empty(t, outcome.Unpackable)
}
