// Package mailpost recovers structured social-network posts from
// notification emails. It classifies the subject line, extracts the post
// body from semi-structured markup with a selector cascade and a heuristic
// fallback, harvests media and outbound links, and scores the result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, mbox/).
package mailpost
