// Package siterank analyzes the markup and text of web pages and reduces
// them to a scored SEO profile with ranked recommendations.
//
// This package contains domain types, interfaces and the merge and scoring
// rules shared by every stage, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, gin/).
package siterank
