package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "roadsign",
			objectType:  "presented_test",
			identifier:  "01HZX",
			expectedKey: "learn2drive:roadsign:presented_test:01HZX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "catalog",
			objectType:  "items",
			identifier:  "quiz",
			paramsKey:   []string{},
			expectedKey: "learn2drive:catalog:items:quiz",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "catalog",
			objectType:  "items",
			identifier:  "road_sign",
			paramsKey:   []string{"warning", "practice"},
			expectedKey: "learn2drive:catalog:items:road_sign:warning_practice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestNamedKeys(t *testing.T) {
	assert.Equal(t, "learn2drive:roadsign:presented_test:abc", PresentedTestKey("abc"))
	assert.Equal(t, "learn2drive:catalog:items:quiz", CatalogItemsKey("quiz", ""))
	assert.Equal(t, "learn2drive:catalog:items:road_sign:regulatory", CatalogItemsKey("road_sign", "regulatory"))
	assert.Equal(t, "learn2drive:catalog:groups:driving_test", CatalogGroupsKey("driving_test"))
}
