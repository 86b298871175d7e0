// Package components provides a declarative, theme-aware component
// catalog for terminal applications.
//
// Components describe their appearance as style descriptors. At render
// time each component merges its descriptor sources, runs the result
// through the style pipeline exactly once (merge, directional flip,
// vendor prefixing), and applies the prepared descriptor to a lipgloss
// style. Themes travel explicitly through RenderContext; there is no
// global theme state, so tests and multi-theme applications need no
// coordination.
//
// Primitives: Text, Divider, Icon glyphs. Semantic: Button, Badge,
// Menu. Layout: Stack. The interactive slider lives in pkg/slider; its
// tokens come from the same theme.
package components
