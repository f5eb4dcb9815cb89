// Package naming classifies raw media filename stems into structured
// movie/TV metadata and renders clean display names from them.
//
// The core is an ordered pattern table evaluated by [Parse]; first match
// wins, TV patterns before movie patterns. [MediaInfo.Render] is the
// inverse direction: metadata back to a normalized filename stem.
// [OutputPath] and [CollisionResolver] turn rendered names into unique
// destination paths for a batch run.
package naming
