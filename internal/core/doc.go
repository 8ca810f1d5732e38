// Package core provides the export pipeline for the product catalog.
//
// This package holds all export logic independent of any UI or transport
// layer. It can be used by web handlers, the CLI, or tests without
// modification.
//
// # Pipeline
//
// An export runs four pure stages over an immutable catalog snapshot:
//
//  1. [FilterProducts] keeps products matching a [FilterCriteria], in
//     catalog order, truncated to the limit.
//  2. [Project] maps each product onto the selected field ids. Undefined
//     attributes and unknown ids become [NotAvailable].
//  3. A [Serializer] renders the result. JSON and generic CSV consume
//     projected records; WooCommerce and PrestaShop read products directly
//     with a fixed column layout.
//  4. [Export] names the payload from the configured or default filename.
//
// # Serializer Registry
//
// Serializers are registered at init time using [Register]. Import the
// formats package for its side effects:
//
//	import _ "github.com/JonMunkholm/catalog-export/internal/core/formats"
//
// # Service
//
// [Service] owns the current catalog snapshot loaded from a [Source], saved
// [ExportProfile] values, an [ExportLimiter] and the recent-exports history.
// It enforces the per-format enable flags that the pure [Export] ignores.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Unknown field ids, empty results and non-positive limits are not errors.
package core
