// Package youtube recognises YouTube links and looks up video titles.
//
// ExtractVideoID accepts, in this order:
//   - watch links with a v parameter anywhere in the query (youtube.com/watch?...&v=ID)
//   - short links (youtu.be/ID)
//   - embed links (youtube.com/embed/ID)
//   - legacy links (youtube.com/v/ID)
//   - shorts links (youtube.com/shorts/ID)
//   - a bare 11 character ID
//
// The scheme and the www. prefix are optional for every link form. Titles are
// resolved through an oEmbed-compatible endpoint (noembed by default). Lookup
// failures never surface to callers; they get a placeholder title instead.
package youtube
