// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Dataset Access
//
//   - dataset.Source: Where snapshot bytes come from (internal/dataset/source.go)
//   - lexicon.Querier: Raw parameterised reads returning column-keyed rows (internal/database/lexicon/repository.go)
//
// ## Read Interfaces
//
//   - services.WordStore: Exact word plus per-word facets (internal/services/interfaces.go)
//   - http.WordDetailLooker: Composite word detail (internal/http/stores.go)
//   - http.SuggestionSource: Prefix autocomplete (internal/http/stores.go)
//   - http.RootLookup: Words sharing a root (internal/http/stores.go)
//   - http.DatasetChecker: Health of the opened snapshot (internal/http/stores.go)
//
// ## External Service Interfaces
//
//   - dictionary.Client: Online definitions (internal/dictionary/client.go)
//
// # Adding a New Snapshot Source
//
// To load the dataset from somewhere new (e.g. object storage):
//
//  1. Implement Source in internal/dataset/
//
//     type BucketSource struct {
//         Bucket, Key string
//     }
//
//     func (s BucketSource) Name() string
//     func (s BucketSource) Fetch(ctx context.Context) ([]byte, error)
//
//     var _ Source = BucketSource{}
//
//  2. Select it in entrypoint.DatasetSource
//
// # Adding a New Suggestion Backend
//
// Anything with PrefixSearch(prefix, limit) can serve /api/suggest. It must
// order results the same way lexicon.Repository does: frequency rank, then
// word length, then word, then id.
//
// # Adding a New Dictionary Provider
//
//  1. Implement Client in internal/dictionary/
//
//     type WiktionaryClient struct {
//         httpClient *http.Client
//     }
//
//     func (c *WiktionaryClient) Name() string
//     func (c *WiktionaryClient) Lookup(ctx context.Context, word string) (*LookupResult, error)
//
//     var _ Client = (*WiktionaryClient)(nil)
//
//  2. Configure in entrypoint.NewRouterConfig
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
