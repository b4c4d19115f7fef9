// Package restaurant holds the Restaurant entity and the Food items listed on
// restaurant menus. Food prices are exact decimals.
package restaurant
