package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the Travely application.
// Pattern: travely:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_LONG  = 24 * time.Hour // very stable data
	TTL_STATIC_SHORT = 6 * time.Hour  // user profiles

	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // route details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // discount catalog
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // route listings

	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // booking listings
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // seat availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "travely"
)

// ================== ROUTE CATALOG ==================

const (
	CACHE_KEY_ROUTES_LIST   = CACHE_PREFIX + ":routes:list"    // + :page:X:limit:Y:transport:Z
	CACHE_KEY_ROUTES_SEARCH = CACHE_PREFIX + ":routes:search"  // + :origin:X:destination:Y
	CACHE_KEY_ROUTE_DETAIL  = CACHE_PREFIX + ":routes:detail:" // + route-id
)

const (
	TTL_ROUTES_LIST   = TTL_SEMI_STATIC_QUICK
	TTL_ROUTES_SEARCH = TTL_SEMI_STATIC_QUICK
	TTL_ROUTE_DETAIL  = TTL_DYNAMIC_SHORT // seats_available changes with every booking
)

// ================== DISCOUNT CATALOG ==================

const (
	CACHE_KEY_DISCOUNTS_LIST = CACHE_PREFIX + ":discounts:list"
)

const (
	TTL_DISCOUNTS_LIST = TTL_SEMI_STATIC_SHORT
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_ROUTES_ALL    = CACHE_PREFIX + ":routes:*"
	PATTERN_INVALIDATE_DISCOUNTS_ALL = CACHE_PREFIX + ":discounts:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildRouteListKey(page, limit int, transportType string) string {
	if transportType != "" {
		return fmt.Sprintf("%s:page:%d:limit:%d:transport:%s", CACHE_KEY_ROUTES_LIST, page, limit, transportType)
	}
	return fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_ROUTES_LIST, page, limit)
}

func BuildRouteSearchKey(origin, destination string) string {
	return fmt.Sprintf("%s:origin:%s:destination:%s", CACHE_KEY_ROUTES_SEARCH, origin, destination)
}

func BuildRouteDetailKey(routeID uint) string {
	return fmt.Sprintf("%s%d", CACHE_KEY_ROUTE_DETAIL, routeID)
}
