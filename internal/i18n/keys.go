// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Catalog
	KeyCatalogNotReady   = "catalog.not_ready"
	KeyCatalogLoadFailed = "catalog.load_failed"
	KeyCatalogReloaded   = "catalog.reloaded"
	KeyProductNotFound   = "product.not_found"

	// Search
	KeySearchEmptyQuery = "search.empty_query"
	KeySearchEnhanced   = "search.enhanced_results"

	// Cart
	KeyCartAdded           = "cart.added"
	KeyCartRemoved         = "cart.removed"
	KeyCartUpdated         = "cart.updated"
	KeyCartCleared         = "cart.cleared"
	KeyCartEmpty           = "cart.empty"
	KeyCartItemNotFound    = "cart_item.not_found"
	KeyCheckoutOrderPlaced = "checkout.order_placed"

	// Wishlist
	KeyWishlistAdded   = "wishlist.added"
	KeyWishlistRemoved = "wishlist.removed"

	// Compare
	KeyCompareAdded   = "compare.added"
	KeyCompareRemoved = "compare.removed"
	KeyCompareFull    = "compare.full"

	// Profile
	KeyProfileSaved     = "profile.saved"
	KeyProfileLoggedOut = "profile.logged_out"

	// Orders
	KeyOrderAdded    = "order.added"
	KeyOrderUpdated  = "order.updated"
	KeyOrderDeleted  = "order.deleted"
	KeyOrderNotFound = "order.not_found"

	// Chat
	KeyChatEmptyMessage = "chat.empty_message"
)
