// Package catalog is the storefront's query engine: stateless filter, sort,
// page, keyword and recommendation functions over an in-memory product list.
//
// None of the functions mutate the catalog they are given. All caller state
// (filters, page number, cart and wishlist membership) is passed in per call.
package catalog
