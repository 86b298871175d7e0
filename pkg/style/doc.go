// Package style implements the style preparation pipeline every trellis
// component runs immediately before rendering.
//
// The unit of styling is the Descriptor, a plain mapping from property
// names to values. Descriptors flow through three pure stages:
//
//  1. Merge - ordered key-by-key combination, later descriptors win
//  2. Flip - mirroring of direction-sensitive properties for
//     right-to-left themes, including structural rewriting of
//     transform function lists
//  3. Prefix - expansion into vendor-prefixed variants through a
//     replaceable Prefixer collaborator
//
// Prepare composes the three stages and must run exactly once per
// descriptor per render. Flipping an already-flipped descriptor is a
// misuse; it is detected through a marker key and reported as a
// non-fatal developer warning.
//
// Every stage returns a fresh descriptor and never mutates its input,
// so a descriptor can safely serve as the base for several merges.
package style
