package cache

import "strings"

const (
	GlobalKeyPrefix = "learn2drive"
)

// Key namespaces used by the services.
const (
	ServiceRoadSign = "roadsign"
	ServiceCatalog  = "catalog"
)

// GenerateCacheKey builds "learn2drive:<service>:<objectType>:<identifier>".
// Any paramsKey values are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// PresentedTestKey is where the option mapping of a started road-sign test lives.
func PresentedTestKey(testID string) string {
	return GenerateCacheKey(ServiceRoadSign, "presented_test", testID)
}

// CatalogItemsKey caches the items of one kind, optionally restricted to a group.
func CatalogItemsKey(kind, groupKey string) string {
	if groupKey == "" {
		return GenerateCacheKey(ServiceCatalog, "items", kind)
	}
	return GenerateCacheKey(ServiceCatalog, "items", kind, groupKey)
}

// CatalogGroupsKey caches the topic or category list of one kind.
func CatalogGroupsKey(kind string) string {
	return GenerateCacheKey(ServiceCatalog, "groups", kind)
}
