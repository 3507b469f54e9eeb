// Package identity resolves the caller's identity and roles at the
// HTTP boundary.
//
// The document store itself performs no authentication; it trusts the
// Author handed to it. This package derives that Author and the
// caller's roles from identity-provider claims: entitlement strings of
// the form
//
//	urn:mace:egi.eu:group:<vo>:[<group>:]role=<role>#aai.egi.eu
//
// VO membership gates everything, group membership gates the named
// roles.
package identity
