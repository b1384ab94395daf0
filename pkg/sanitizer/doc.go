// Package sanitizer provides bluemonday policies for HTML produced from
// translated messages.
//
// Translators may put markup into messages ("<b>{count}</b> new"), so HTML
// message output is only as safe as the catalog. The policies here bound
// what such output may contain:
//
//   - Strict removes every tag and keeps the text.
//   - Inline keeps inline formatting (b, strong, i, em, u, s, small, sub,
//     sup, code, span, br) and links with rel="nofollow".
//   - Safe adds paragraphs, lists, pre and blockquote to Inline.
//
// Policy returns a preset by name for configuration files and flags.
package sanitizer
