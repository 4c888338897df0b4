// Package scaladoc resolves short keyword queries to Scaladoc page URLs.
// It reads the index.js symbol index published with every Scaladoc site,
// keeps a flattened copy of each index in an on-disk cache, and matches
// keyword sequences against the cached symbol paths.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, goquery/).
package scaladoc
