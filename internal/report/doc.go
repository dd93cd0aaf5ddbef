// Package report renders analyzed entities and check failures.
//
// Each Format pairs an entity renderer with a failure presenter:
//   - raw: entities and failures in their unambiguous form
//   - brief: one line per entity or failure
//   - summary: per-section tables followed by a grand total
//   - full: a detailed block per entity or failure
//
// The zero format, FormatNone, renders entities like summary and reports
// failures through the logger.
//
// Render returns a lazy line sequence that LineWriter writes out.
// MarkdownWriter renders the summary sections as a Markdown document.
package report
