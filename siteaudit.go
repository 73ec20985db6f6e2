// Package siteaudit provides content performance auditing for the web.
// It scores pages for search visibility, AI answer-engine citability, and
// accessibility compliance, iteratively rewrites content to raise those
// scores, and benchmarks a page against its competitors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package siteaudit
